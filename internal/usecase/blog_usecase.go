package usecase

import (
	"context"
	"time"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
	}
}

type BlogPostInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	Author     string
	Tags       []string
	CoverImage string
	Published  bool
}

func (uc *BlogUseCase) CreatePost(ctx context.Context, input BlogPostInput) (*entity.BlogPost, error) {
	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Title)
	}

	post := &entity.BlogPost{
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Author:     input.Author,
		Tags:       input.Tags,
		CoverImage: input.CoverImage,
		Published:  input.Published,
	}
	if input.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *BlogUseCase) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.NotFound("Blog post", nil)
	}
	return post, nil
}

func (uc *BlogUseCase) GetPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.NotFound("Blog post", nil)
	}
	return post, nil
}

func (uc *BlogUseCase) ListPosts(ctx context.Context, criteria repository.BlogCriteria, sort string, page repository.Page) ([]*entity.BlogPost, int64, error) {
	return uc.blogRepo.List(ctx, criteria, sort, page)
}

func (uc *BlogUseCase) UpdatePost(ctx context.Context, id string, input BlogPostInput) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.NotFound("Blog post", nil)
	}

	post.Title = input.Title
	if input.Slug != "" {
		post.Slug = input.Slug
	}
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.Author = input.Author
	post.Tags = input.Tags
	post.CoverImage = input.CoverImage

	// First publish stamps the publication time; unpublishing keeps it.
	if input.Published && !post.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	post.Published = input.Published

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, id string) error {
	return uc.blogRepo.Delete(ctx, id)
}
