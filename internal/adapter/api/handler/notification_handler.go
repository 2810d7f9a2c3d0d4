package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

type recordNotificationRequest struct {
	Type    string `json:"type" validate:"required,oneof=contact booking newsletter order"`
	Source  string `json:"source,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

// RecordNotification backs the public contact and newsletter forms.
func (h *NotificationHandler) RecordNotification(c echo.Context) error {
	var req recordNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	notification, err := h.notificationUseCase.RecordNotification(c.Request().Context(), usecase.RecordNotificationInput{
		Type:    req.Type,
		Source:  req.Source,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, notification)
}

func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	criteria := repository.NotificationCriteria{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}

	pagination := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationUseCase.ListNotifications(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, pagination.Page, pagination.Limit)
}

func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notification, err := h.notificationUseCase.GetNotification(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, notification)
}

type updateNotificationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read archived"`
}

func (h *NotificationHandler) UpdateNotificationStatus(c echo.Context) error {
	var req updateNotificationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	notification, err := h.notificationUseCase.SetNotificationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notification)
}

func (h *NotificationHandler) MarkEmailSent(c echo.Context) error {
	if err := h.notificationUseCase.MarkEmailSent(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "sent"})
}
