package main

import (
	"fmt"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// カタログの初期データ投入。
// 既に商品があれば何もしない（再実行しても増殖しない）。
func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect(config.LoadDB())
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		panic(err)
	}

	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		panic(err)
	}
	if count > 0 {
		fmt.Printf("products already seeded (%d rows), skipping\n", count)
		return
	}

	products := sampleProducts()
	if err := gormDB.Create(&products).Error; err != nil {
		panic(err)
	}

	fmt.Printf("seeded %d products\n", len(products))
}

func sampleProducts() []model.Product {
	return []model.Product{
		{
			Title:       "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality. Perfect for music lovers and professionals.",
			Price:       decimal.NewFromFloat(299.99),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:    "electronics",
			RatingRate:  4.8,
			RatingCount: 342,
			Stock:       45,
		},
		{
			Title:       "Leather Crossbody Bag",
			Description: "Elegant leather crossbody bag with multiple compartments. Stylish and practical for everyday use.",
			Price:       decimal.NewFromFloat(89.99),
			Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500",
			Category:    "fashion",
			RatingRate:  4.6,
			RatingCount: 128,
			Stock:       78,
		},
		{
			Title:       "Minimalist Watch",
			Description: "Sleek minimalist watch with stainless steel band. Timeless design that goes with any outfit.",
			Price:       decimal.NewFromFloat(149.99),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Category:    "accessories",
			RatingRate:  4.7,
			RatingCount: 256,
			Stock:       32,
		},
		{
			Title:       "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking. Perfect for work and gaming.",
			Price:       decimal.NewFromFloat(39.99),
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500",
			Category:    "electronics",
			RatingRate:  4.4,
			RatingCount: 189,
			Stock:       120,
		},
		{
			Title:       "Ceramic Coffee Mug Set",
			Description: "Set of four handmade ceramic mugs. Microwave and dishwasher safe.",
			Price:       decimal.NewFromFloat(34.99),
			Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=500",
			Category:    "home",
			RatingRate:  4.5,
			RatingCount: 97,
			Stock:       64,
		},
		{
			Title:       "Running Sneakers",
			Description: "Lightweight running sneakers with breathable mesh and cushioned sole.",
			Price:       decimal.NewFromFloat(119.99),
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category:    "fashion",
			RatingRate:  4.6,
			RatingCount: 412,
			Stock:       53,
		},
	}
}
