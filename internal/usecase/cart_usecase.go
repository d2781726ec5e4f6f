package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジック。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// 読み取り時点の商品スナップショット。
// 表示価格は後で注文に記録される価格とずれうる。
type CartProductResponse struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type CartLineResponse struct {
	ID       int64               `json:"id"`
	Quantity int64               `json:"quantity"`
	Product  CartProductResponse `json:"product"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// GetCart はカート一覧（商品join付き）。
// 商品が解決できない明細は黙って落とす。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]CartLineResponse, error) {
	if userID <= 0 {
		return []CartLineResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CartLineResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		//落とすのは商品が消えている場合だけ。DB障害は500で返す
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return []CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines = append(lines, CartLineResponse{
			ID:       it.ID,
			Quantity: it.Quantity,
			Product: CartProductResponse{
				ID:    p.ID,
				Title: p.Title,
				Price: p.Price,
				Image: p.Image,
			},
		})
	}

	return lines, nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// createdは新規明細を作ったときtrue。在庫上限のチェックはしない。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (bool, error) {
	if userID <= 0 {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Quantity < 1 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品の存在チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return false, NewHTTPError(http.StatusBadRequest, "product does not exist")
	}
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.cartItemRepo.AddQuantity(ctx, userID, in.ProductID, in.Quantity)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

// 数量変更（所有チェック込み）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if qty < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	err := u.cartItemRepo.UpdateQuantity(ctx, userID, cartItemID, qty)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 明細削除
func (u *CartUsecase) DeleteItem(ctx context.Context, userID int64, cartItemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartItemRepo.DeleteByID(ctx, userID, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// バッジ表示用の数量合計
func (u *CartUsecase) Count(ctx context.Context, userID int64) (CartCountResponse, error) {
	if userID <= 0 {
		return CartCountResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	total, err := u.cartItemRepo.SumQuantities(ctx, userID)
	if err != nil {
		return CartCountResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartCountResponse{Count: total}, nil
}
