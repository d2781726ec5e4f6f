package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) AddQuantity(ctx context.Context, userID int64, productID int64, addQty int64) (bool, error) {
	args := m.Called(ctx, userID, productID, addQty)
	return args.Bool(0), args.Error(1)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	args := m.Called(ctx, userID, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, userID int64, cartItemID int64) error {
	args := m.Called(ctx, userID, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) SumQuantities(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ repo.CartItemRepository = (*CartItemRepoMock)(nil)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

// =====================
// In-memory fake（数量加算の確認用）
// =====================

// fakeCartItemRepo は upsert の加算セマンティクスをそのまま持つ。
type fakeCartItemRepo struct {
	nextID int64
	items  []model.CartItem
}

func (f *fakeCartItemRepo) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	out := []model.CartItem{}
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartItemRepo) AddQuantity(ctx context.Context, userID int64, productID int64, addQty int64) (bool, error) {
	for i := range f.items {
		if f.items[i].UserID == userID && f.items[i].ProductID == productID {
			f.items[i].Quantity += addQty
			return false, nil
		}
	}
	f.nextID++
	f.items = append(f.items, model.CartItem{
		ID:        f.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  addQty,
	})
	return true, nil
}

func (f *fakeCartItemRepo) UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	for i := range f.items {
		if f.items[i].ID == cartItemID && f.items[i].UserID == userID {
			f.items[i].Quantity = qty
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeCartItemRepo) DeleteByID(ctx context.Context, userID int64, cartItemID int64) error {
	for i := range f.items {
		if f.items[i].ID == cartItemID && f.items[i].UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeCartItemRepo) SumQuantities(ctx context.Context, userID int64) (int64, error) {
	var total int64
	for _, it := range f.items {
		if it.UserID == userID {
			total += it.Quantity
		}
	}
	return total, nil
}

func (f *fakeCartItemRepo) DeleteAllByUserID(ctx context.Context, userID int64) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

var _ repo.CartItemRepository = (*fakeCartItemRepo)(nil)

// =====================
// helper
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), want),
			"error %q should contain %q", err.Error(), want)
	}
}

// =====================
// AddToCart
// =====================

// 同一商品を2回addすると明細は1行で数量が合算される
func TestCartUsecase_AddToCart_MergesSameProduct(t *testing.T) {
	ctx := context.Background()

	fake := &fakeCartItemRepo{}
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Title: "Beans"}, nil)

	uc := usecase.NewCartUsecase(fake, pRepo)

	created, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 7, Quantity: 2})
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 7, Quantity: 2})
	assert.NoError(t, err)
	assert.False(t, created)

	items, err := fake.ListByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, int64(4), items[0].Quantity)
}

func TestCartUsecase_AddToCart_UnknownProduct(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(cRepo, pRepo)

	_, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 99, Quantity: 1})
	assertErrContains(t, err, "product does not exist")

	cRepo.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartItemRepoMock), new(ProductRepoMock))

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 7, Quantity: 0})
	assertErrContains(t, err, "invalid quantity")
}

// =====================
// UpdateItem / DeleteItem
// =====================

// 数量0や負数は拒否される
func TestCartUsecase_UpdateItem_RejectsQuantityBelowOne(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(ProductRepoMock))

	err := uc.UpdateItem(context.Background(), 1, 10, 0)
	assertErrContains(t, err, "invalid quantity")

	err = uc.UpdateItem(context.Background(), 1, 10, -3)
	assertErrContains(t, err, "invalid quantity")

	cRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 他人の明細は404
func TestCartUsecase_UpdateItem_NotOwned_NotFound(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	cRepo.On("UpdateQuantity", mock.Anything, int64(1), int64(10), int64(3)).Return(repo.ErrNotFound)

	uc := usecase.NewCartUsecase(cRepo, new(ProductRepoMock))

	err := uc.UpdateItem(ctx, 1, 10, 3)
	assertErrContains(t, err, "cart item not found")
}

func TestCartUsecase_DeleteItem_NotFound(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	cRepo.On("DeleteByID", mock.Anything, int64(1), int64(10)).Return(repo.ErrNotFound)

	uc := usecase.NewCartUsecase(cRepo, new(ProductRepoMock))

	err := uc.DeleteItem(ctx, 1, 10)
	assertErrContains(t, err, "cart item not found")
}

// =====================
// GetCart / Count
// =====================

// 商品が解決できない明細は黙って落ちる
func TestCartUsecase_GetCart_DropsUnresolvedProducts(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 7, Quantity: 2},
		{ID: 2, UserID: 1, ProductID: 8, Quantity: 1},
	}, nil)

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{
		ID:    7,
		Title: "Beans",
		Price: decimal.NewFromFloat(12.50),
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(8)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(cRepo, pRepo)

	lines, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, "Beans", lines[0].Product.Title)
	assert.True(t, lines[0].Product.Price.Equal(decimal.NewFromFloat(12.50)))
}

// 落ちるのは商品が消えた明細だけ。商品参照のDB障害は500になる
func TestCartUsecase_GetCart_DBErrorSurfaces(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 7, Quantity: 2},
	}, nil)

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.Product{}, errors.New("db connection lost"))

	uc := usecase.NewCartUsecase(cRepo, pRepo)

	_, err := uc.GetCart(ctx, 1)
	assertErrContains(t, err, "db error")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestCartUsecase_Count_SumsQuantities(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	cRepo.On("SumQuantities", mock.Anything, int64(1)).Return(int64(4), nil)

	uc := usecase.NewCartUsecase(cRepo, new(ProductRepoMock))

	out, err := uc.Count(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Count)
}
