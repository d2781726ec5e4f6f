package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品はシードでのみ作られ、アプリからは読み取り専用。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string          `gorm:"type:varchar(512)" json:"image"`
	Category    string          `gorm:"type:varchar(100);index" json:"category"`
	RatingRate  float64         `gorm:"not null;default:0" json:"rating_rate"`
	RatingCount int64           `gorm:"not null;default:0" json:"rating_count"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
