package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	//作成時に設定され、以後遷移しない
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64           `gorm:"not null;index" json:"user_id"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"type:varchar(50);not null" json:"payment_method"`

	//配送先
	ShippingAddress    string `gorm:"type:varchar(255);not null" json:"shipping_address"`
	ShippingCity       string `gorm:"type:varchar(255);not null" json:"shipping_city"`
	ShippingCountry    string `gorm:"type:varchar(255);not null" json:"shipping_country"`
	ShippingPostalCode string `gorm:"type:varchar(20)" json:"shipping_postal_code"`

	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
