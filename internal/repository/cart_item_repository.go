package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)

	// 同一商品は数量加算。行ロック付きのupsertで、並行addでも増分が失われない。
	// createdは新規行を作ったときtrue（加算ならfalse）。
	AddQuantity(ctx context.Context, userID int64, productID int64, addQty int64) (created bool, err error)

	// 所有チェック込み。該当なしは ErrNotFound。
	UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, userID int64, cartItemID int64) error

	//数量の合計（バッジ表示用）
	SumQuantities(ctx context.Context, userID int64) (int64, error)

	//チェックアウト時の全クリア
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
