package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	sellerUseCase  *usecase.SellerUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, sellerUseCase *usecase.SellerUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		sellerUseCase:  sellerUseCase,
	}
}

type productRequest struct {
	Name                 string               `json:"name" validate:"required"`
	Description          string               `json:"description" validate:"required"`
	Category             string               `json:"category" validate:"required"`
	Type                 string               `json:"type" validate:"required,oneof=product service"`
	Price                entity.Price         `json:"price" validate:"required"`
	ServiceableLocations []string             `json:"serviceable_locations,omitempty"`
	Stock                int                  `json:"stock" validate:"gte=0"`
	Images               []usecase.ImageInput `json:"images,omitempty"`
	Featured             bool                 `json:"featured"`
	Status               string               `json:"status,omitempty" validate:"omitempty,oneof=draft active archived"`
}

func (r *productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:                 r.Name,
		Description:          r.Description,
		Category:             r.Category,
		Type:                 r.Type,
		Price:                r.Price,
		ServiceableLocations: r.ServiceableLocations,
		Stock:                r.Stock,
		Images:               r.Images,
		Featured:             r.Featured,
		Status:               r.Status,
	}
}

// sellerID resolves the caller's seller account from the authenticated uid.
func (h *ProductHandler) sellerID(c echo.Context) (string, error) {
	uid := c.Get("uid").(string)
	seller, err := h.sellerUseCase.GetSellerByUser(c.Request().Context(), uid)
	if err != nil {
		return "", err
	}
	return seller.ID.Hex(), nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID, err := h.sellerID(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	criteria := repository.ProductCriteria{
		SellerID: c.QueryParam("seller_id"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
		Featured: queryBool(c, "featured"),
		Approved: queryBool(c, "approved"),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.Limit)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID, err := h.sellerID(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), sellerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, err := h.sellerID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

type moderateProductRequest struct {
	Approved bool `json:"approved"`
}

func (h *ProductHandler) ModerateProduct(c echo.Context) error {
	var req moderateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.ModerateProduct(c.Request().Context(), c.Param("id"), req.Approved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
