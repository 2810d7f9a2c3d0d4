package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
	sellerUseCase *usecase.SellerUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase, sellerUseCase *usecase.SellerUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		sellerUseCase: sellerUseCase,
	}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content" validate:"required"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), c.Param("productId"), uid, usecase.ReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	criteria := repository.ReviewCriteria{
		ProductID: c.QueryParam("product_id"),
		SellerID:  c.QueryParam("seller_id"),
		UserID:    c.QueryParam("user_id"),
		Rating:    queryInt(c, "rating"),
		Approved:  queryBool(c, "approved"),
		Hidden:    queryBool(c, "hidden"),
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviews(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.Limit)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.reviewUseCase.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), c.Param("id"), uid, usecase.ReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ReviewHandler) AdminDeleteReview(c echo.Context) error {
	if err := h.reviewUseCase.AdminDeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

type voteReviewRequest struct {
	Vote string `json:"vote" validate:"required"`
}

func (h *ReviewHandler) VoteReview(c echo.Context) error {
	var req voteReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.VoteReview(c.Request().Context(), c.Param("id"), uid, req.Vote)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

type respondReviewRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *ReviewHandler) RespondToReview(c echo.Context) error {
	var req respondReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	seller, err := h.sellerUseCase.GetSellerByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.RespondToReview(c.Request().Context(), c.Param("id"), seller.ID.Hex(), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

type moderateReviewRequest struct {
	Approved bool `json:"approved"`
	Hidden   bool `json:"hidden"`
}

func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	var req moderateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.ModerateReview(c.Request().Context(), c.Param("id"), req.Approved, req.Hidden)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
