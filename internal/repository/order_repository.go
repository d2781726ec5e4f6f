package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	//作成日時の降順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
