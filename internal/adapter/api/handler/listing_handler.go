package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Title         string             `json:"title" validate:"required"`
	Slug          string             `json:"slug,omitempty"`
	Description   string             `json:"description" validate:"required"`
	Category      string             `json:"category" validate:"required"`
	Price         entity.Price       `json:"price" validate:"required"`
	Locations     []string           `json:"locations" validate:"required,min=1"`
	DurationDays  int                `json:"duration_days" validate:"gte=0"`
	Highlights    []string           `json:"highlights,omitempty"`
	Images        []usecase.ImageInput `json:"images,omitempty"`
	AvailableFrom time.Time          `json:"available_from,omitempty"`
	AvailableTo   time.Time          `json:"available_to,omitempty"`
	Featured      bool               `json:"featured"`
	Status        string             `json:"status,omitempty" validate:"omitempty,oneof=draft active archived"`
}

func (r *listingRequest) toInput() usecase.ListingInput {
	return usecase.ListingInput{
		Title:         r.Title,
		Slug:          r.Slug,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		Locations:     r.Locations,
		DurationDays:  r.DurationDays,
		Highlights:    r.Highlights,
		Images:        r.Images,
		AvailableFrom: r.AvailableFrom,
		AvailableTo:   r.AvailableTo,
		Featured:      r.Featured,
		Status:        r.Status,
	}
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetListings(c echo.Context) error {
	criteria := repository.ListingCriteria{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
		Featured: queryBool(c, "featured"),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
	}

	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListListings(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.Limit)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) GetListingBySlug(c echo.Context) error {
	listing, err := h.listingUseCase.GetListingBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ArchiveListing(c echo.Context) error {
	if err := h.listingUseCase.ArchiveListing(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "archived"})
}
