package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type SellerHandler struct {
	sellerUseCase *usecase.SellerUseCase
}

func NewSellerHandler(sellerUseCase *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{
		sellerUseCase: sellerUseCase,
	}
}

type registerSellerRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty"`
	ServiceBranch string `json:"service_branch" validate:"required"`
	Location      string `json:"location,omitempty"`
	Bio           string `json:"bio,omitempty"`
}

func (h *SellerHandler) RegisterSeller(c echo.Context) error {
	var req registerSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	seller, err := h.sellerUseCase.RegisterSeller(c.Request().Context(), uid, usecase.RegisterSellerInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceBranch: req.ServiceBranch,
		Location:      req.Location,
		Bio:           req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, seller)
}

func (h *SellerHandler) GetSellers(c echo.Context) error {
	criteria := repository.SellerCriteria{
		Status:        c.QueryParam("status"),
		ServiceBranch: c.QueryParam("service_branch"),
		Search:        c.QueryParam("search"),
		Verified:      queryBool(c, "verified"),
	}

	pagination := utils.GetPaginationParams(c)

	sellers, total, err := h.sellerUseCase.ListSellers(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, sellers, total, pagination.Page, pagination.Limit)
}

func (h *SellerHandler) GetSeller(c echo.Context) error {
	seller, err := h.sellerUseCase.GetSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, seller)
}

func (h *SellerHandler) GetMySeller(c echo.Context) error {
	uid := c.Get("uid").(string)

	seller, err := h.sellerUseCase.GetSellerByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, seller)
}

type updateSellerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	var req updateSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	seller, err := h.sellerUseCase.UpdateSeller(c.Request().Context(), c.Param("id"), uid, usecase.UpdateSellerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

type verifySellerRequest struct {
	Verified bool   `json:"verified"`
	Notes    string `json:"notes,omitempty"`
}

func (h *SellerHandler) VerifySeller(c echo.Context) error {
	var req verifySellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.sellerUseCase.VerifySeller(c.Request().Context(), c.Param("id"), req.Verified, req.Notes)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

type updateSellerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active suspended"`
}

func (h *SellerHandler) UpdateSellerStatus(c echo.Context) error {
	var req updateSellerStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.sellerUseCase.SetSellerStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}
