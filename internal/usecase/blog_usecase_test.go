package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePostStampsPublishedAt(t *testing.T) {
	blogRepo := newFakeBlogRepo()
	uc := NewBlogUseCase(blogRepo)

	post, err := uc.CreatePost(context.Background(), BlogPostInput{
		Title:     "Hidden waterfalls of Meghalaya",
		Content:   "...",
		Author:    "Riya Das",
		Published: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "hidden-waterfalls-of-meghalaya", post.Slug)
	assert.NotNil(t, post.PublishedAt)
}

func TestCreateDraftHasNoPublishedAt(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())

	post, err := uc.CreatePost(context.Background(), BlogPostInput{
		Title:   "Draft notes",
		Content: "...",
		Author:  "Riya Das",
	})

	assert.NoError(t, err)
	assert.Nil(t, post.PublishedAt)
}

func TestUpdatePostFirstPublishStampsOnce(t *testing.T) {
	blogRepo := newFakeBlogRepo()
	uc := NewBlogUseCase(blogRepo)

	post, err := uc.CreatePost(context.Background(), BlogPostInput{
		Title:   "Draft notes",
		Content: "...",
		Author:  "Riya Das",
	})
	assert.NoError(t, err)

	published, err := uc.UpdatePost(context.Background(), post.ID.Hex(), BlogPostInput{
		Title:     "Draft notes",
		Content:   "...",
		Author:    "Riya Das",
		Published: true,
	})
	assert.NoError(t, err)
	assert.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Unpublishing keeps the original timestamp for a later re-publish.
	unpublished, err := uc.UpdatePost(context.Background(), post.ID.Hex(), BlogPostInput{
		Title:   "Draft notes",
		Content: "...",
		Author:  "Riya Das",
	})
	assert.NoError(t, err)
	assert.NotNil(t, unpublished.PublishedAt)
	assert.Equal(t, firstStamp, *unpublished.PublishedAt)
}
