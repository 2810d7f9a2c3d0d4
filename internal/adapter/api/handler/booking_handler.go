package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	ListingID     string    `json:"listing_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
	Guests        int       `json:"guests" validate:"required,min=1"`
	Notes         string    `json:"notes,omitempty"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		ListingID:     req.ListingID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Guests:        req.Guests,
		Notes:         req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.bookingUseCase.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}

func (h *BookingHandler) GetBookings(c echo.Context) error {
	criteria := repository.BookingCriteria{
		ListingID:     c.QueryParam("listing_id"),
		CustomerEmail: c.QueryParam("customer_email"),
		Status:        c.QueryParam("status"),
	}

	if start := c.QueryParam("travel_start"); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			criteria.TravelStart = &t
		}
	}
	if end := c.QueryParam("travel_end"); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			criteria.TravelEnd = &t
		}
	}

	pagination := utils.GetPaginationParams(c)

	bookings, total, err := h.bookingUseCase.ListBookings(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, bookings, total, pagination.Page, pagination.Limit)
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.SetBookingStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}

type cancelBookingRequest struct {
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

// CancelBooking is the public self-service cancel. The caller proves
// ownership with the email used at booking time.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	var req cancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.bookingUseCase.CancelBooking(c.Request().Context(), c.Param("id"), req.CustomerEmail); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "cancelled"})
}
