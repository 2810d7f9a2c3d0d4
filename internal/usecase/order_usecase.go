package usecase

import (
	"context"
	"fmt"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/logger"
)

type OrderUseCase struct {
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

const flatShippingRate = 50.0

// CreateOrder validates the cart against live product state and prices the
// order server-side. All items must come from one seller.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, items []OrderItemInput) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	uid, err := parseObjectID(buyerID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		BuyerID: uid,
		Status:  entity.OrderStatusPending,
	}

	shipGoods := false
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, errors.BadRequest("Item quantity must be at least 1", nil)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, errors.BadRequest(fmt.Sprintf("Product %s is not available", item.ProductID), nil)
		}
		if product.Status != entity.ProductStatusActive || !product.IsApproved {
			return nil, errors.BadRequest(fmt.Sprintf("Product %s is not available for purchase", product.Name), nil)
		}
		if product.Type == entity.ProductKindGoods && product.Stock < item.Quantity {
			return nil, errors.BadRequest(fmt.Sprintf("Insufficient stock for %s", product.Name), nil)
		}

		if order.SellerID.IsZero() {
			order.SellerID = product.SellerID
		} else if order.SellerID != product.SellerID {
			return nil, errors.BadRequest("All items in an order must be from the same seller", nil)
		}

		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Kind:      product.Type,
			Quantity:  item.Quantity,
			UnitPrice: product.Price.Amount,
		})
		order.Totals.Subtotal += product.Price.Amount * float64(item.Quantity)
		if product.Type == entity.ProductKindGoods {
			shipGoods = true
		}
	}

	if shipGoods {
		order.Totals.Shipping = flatShippingRate
	}
	order.Totals.Total = order.Totals.Subtotal + order.Totals.Shipping

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := recordNotification(ctx, uc.notificationRepo, &entity.Notification{
		Type:    entity.NotificationTypeOrder,
		Subject: fmt.Sprintf("New order %s", order.ID.Hex()),
		Message: fmt.Sprintf("Order for %d item(s), total %.2f", len(order.Items), order.Totals.Total),
	}); err != nil {
		logger.Warn("failed to record notification for order %s: %v", order.ID.Hex(), err)
	}

	return order, nil
}

// OrderActor identifies who is acting on an order. SellerID is empty when
// the user has no seller account.
type OrderActor struct {
	UserID   string
	SellerID string
	Admin    bool
}

// GetOrder is scoped: only the buyer, the owning seller, or an admin may
// read it. Anyone else sees the same not-found as a missing order.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string, actor OrderActor) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.NotFound("Order", nil)
	}
	if !actor.Admin && order.BuyerID.Hex() != actor.UserID && order.SellerID.Hex() != actor.SellerID {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, criteria repository.OrderCriteria, sort string, page repository.Page) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, criteria, sort, page)
}

// SetOrderStatus advances the order along the fulfilment graph. The seller
// drives confirmed/shipped/delivered; the buyer may only cancel, and only
// before shipment.
func (uc *OrderUseCase) SetOrderStatus(ctx context.Context, id, status string, actor OrderActor) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.NotFound("Order", nil)
	}

	if !actor.Admin {
		isBuyer := order.BuyerID.Hex() == actor.UserID
		isSeller := order.SellerID.Hex() == actor.SellerID
		if !isBuyer && !isSeller {
			return nil, errors.NotFound("Order", nil)
		}
		if isBuyer && !isSeller && status != entity.OrderStatusCancelled {
			return nil, errors.Forbidden("Buyers can only cancel orders", nil)
		}
	}

	if !entity.CanTransitionOrder(order.Status, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status), nil)
	}

	if err := uc.orderRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
