package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type OrderHandler struct {
	orderUseCase  *usecase.OrderUseCase
	sellerUseCase *usecase.SellerUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, sellerUseCase *usecase.SellerUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase:  orderUseCase,
		sellerUseCase: sellerUseCase,
	}
}

// actor builds the acting identity for scoped order operations. A missing
// seller account just leaves SellerID empty.
func (h *OrderHandler) actor(c echo.Context) usecase.OrderActor {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	actor := usecase.OrderActor{
		UserID: uid,
		Admin:  role == entity.RoleAdmin,
	}

	if seller, err := h.sellerUseCase.GetSellerByUser(c.Request().Context(), uid); err == nil {
		actor.SellerID = seller.ID.Hex()
	}
	return actor
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, items)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"), h.actor(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

// GetMyOrders lists the caller's purchases.
func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	criteria := repository.OrderCriteria{
		BuyerID: uid,
		Status:  c.QueryParam("status"),
	}

	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.Limit)
}

// GetSellerOrders lists orders against the caller's seller account.
func (h *OrderHandler) GetSellerOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	seller, err := h.sellerUseCase.GetSellerByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	criteria := repository.OrderCriteria{
		SellerID: seller.ID.Hex(),
		Status:   c.QueryParam("status"),
	}

	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.Limit)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	criteria := repository.OrderCriteria{
		BuyerID:  c.QueryParam("buyer_id"),
		SellerID: c.QueryParam("seller_id"),
		Status:   c.QueryParam("status"),
	}

	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.Limit)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.SetOrderStatus(c.Request().Context(), c.Param("id"), req.Status, h.actor(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
