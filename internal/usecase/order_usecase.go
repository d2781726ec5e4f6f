package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}

type PlaceOrderInput struct {
	TotalAmount        decimal.Decimal
	PaymentMethod      string
	ShippingAddress    string
	ShippingCity       string
	ShippingCountry    string
	ShippingPostalCode string
	Items              []PlaceOrderItemInput
}

type PlaceOrderOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type OrderLineProductResponse struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

type OrderLineResponse struct {
	Quantity int64                    `json:"quantity"`
	Price    decimal.Decimal          `json:"price"`
	Product  OrderLineProductResponse `json:"product"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	ShippingAddress string              `json:"shipping_address"`
	ShippingCity    string              `json:"shipping_city"`
	OrderItems      []OrderLineResponse `json:"order_items"`
}

// PlaceOrder はチェックアウト本体。
// 注文作成・明細作成・カート全削除を1トランザクションで行う。
// どこかで失敗すれば全体がロールバックされ、明細のない注文は残らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//必須項目チェック（postal codeは任意）
	if !in.TotalAmount.IsPositive() ||
		strings.TrimSpace(in.PaymentMethod) == "" ||
		strings.TrimSpace(in.ShippingAddress) == "" ||
		strings.TrimSpace(in.ShippingCity) == "" ||
		strings.TrimSpace(in.ShippingCountry) == "" ||
		len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity < 1 || it.Price.IsNegative() {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid items")
		}
	}

	var out PlaceOrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:             userID,
			TotalAmount:        in.TotalAmount,
			PaymentMethod:      in.PaymentMethod,
			ShippingAddress:    in.ShippingAddress,
			ShippingCity:       in.ShippingCity,
			ShippingCountry:    in.ShippingCountry,
			ShippingPostalCode: in.ShippingPostalCode,
			Status:             model.OrderStatusConfirmed,
			CreatedAt:          now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細はクライアントのカートビューの凍結コピー
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			orderItems = append(orderItems, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
				CreatedAt: now,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートをクリア
		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{
			ID:      orderID,
			Message: "Order created successfully",
		}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

// 自分の注文一覧（明細と商品join付き、新しい順）。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderResponse, error) {
	if userID <= 0 {
		return []OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			lines := make([]OrderLineResponse, 0, len(items))
			for _, it := range items {
				//商品が消えていたら明細ごと落とす。DB障害は500で返す
				p, err := r.Products().FindByID(ctx, it.ProductID)
				if err == repo.ErrNotFound {
					continue
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}

				lines = append(lines, OrderLineResponse{
					Quantity: it.Quantity,
					Price:    it.Price,
					Product: OrderLineProductResponse{
						Title: p.Title,
						Image: p.Image,
					},
				})
			}

			outs = append(outs, OrderResponse{
				ID:              o.ID,
				TotalAmount:     o.TotalAmount,
				PaymentMethod:   o.PaymentMethod,
				Status:          string(o.Status),
				CreatedAt:       o.CreatedAt,
				ShippingAddress: o.ShippingAddress,
				ShippingCity:    o.ShippingCity,
				OrderItems:      lines,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderResponse{}, err
	}
	return outs, nil
}
