package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// email一意制約に当たったときの統一エラー
var ErrEmailTaken = errors.New("email already taken")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（email重複はErrEmailTakenで返る）
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//プロフィール更新など
	Update(ctx context.Context, user *model.User) error
}
