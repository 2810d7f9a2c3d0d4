package handler

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/domain/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/response"
	"nevoyage/pkg/utils"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

type blogPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug,omitempty"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Content    string   `json:"content" validate:"required"`
	Author     string   `json:"author" validate:"required"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
	Published  bool     `json:"published"`
}

func (r *blogPostRequest) toInput() usecase.BlogPostInput {
	return usecase.BlogPostInput{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		Author:     r.Author,
		Tags:       r.Tags,
		CoverImage: r.CoverImage,
		Published:  r.Published,
	}
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.CreatePost(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *BlogHandler) GetPosts(c echo.Context) error {
	criteria := repository.BlogCriteria{
		Tag:       c.QueryParam("tag"),
		Search:    c.QueryParam("search"),
		Published: queryBool(c, "published"),
	}

	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.blogUseCase.ListPosts(
		c.Request().Context(),
		criteria,
		c.QueryParam("sort"),
		repository.Page{Page: pagination.Page, Limit: pagination.Limit},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.Limit)
}

func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.blogUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) GetPostBySlug(c echo.Context) error {
	post, err := h.blogUseCase.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.UpdatePost(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	if err := h.blogUseCase.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
