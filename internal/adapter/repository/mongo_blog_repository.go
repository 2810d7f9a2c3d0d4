package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nevoyage/internal/adapter/repository/listquery"
	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	apperrors "nevoyage/pkg/errors"
)

var blogSorts = map[string]listquery.SortSpec{
	"newest": {Field: "createdAt", Desc: true},
	"oldest": {Field: "createdAt"},
}

type mongoBlogRepository struct {
	baseRepository[entity.BlogPost]
}

func NewMongoBlogRepository(db *mongo.Database) repository.BlogRepository {
	return &mongoBlogRepository{baseRepository[entity.BlogPost]{coll: db.Collection(collBlogPosts)}}
}

func (r *mongoBlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now().UTC()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A post with this slug already exists", err)
		}
		return apperrors.Internal("Failed to create blog post", err)
	}
	return nil
}

func (r *mongoBlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return r.findByID(ctx, id)
}

func (r *mongoBlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoBlogRepository) List(ctx context.Context, criteria repository.BlogCriteria, sort string, page repository.Page) ([]*entity.BlogPost, int64, error) {
	b := listquery.NewBuilder().
		Eq("tags", criteria.Tag).
		Bool("published", criteria.Published).
		Text(criteria.Search)

	sortDoc, projection := listquery.Order(blogSorts, sort, b.HasText())
	return r.findPage(ctx, b.Filter(), sortDoc, projection, page, listquery.DefaultLimit)
}

func (r *mongoBlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	if post.ID.IsZero() {
		return apperrors.BadRequest("Post id is required", nil)
	}

	update := bson.M{
		"title":       post.Title,
		"slug":        post.Slug,
		"excerpt":     post.Excerpt,
		"content":     post.Content,
		"author":      post.Author,
		"tags":        post.Tags,
		"coverImage":  post.CoverImage,
		"published":   post.Published,
		"publishedAt": post.PublishedAt,
		"updatedAt":   time.Now().UTC(),
	}
	result, err := r.coll.UpdateByID(ctx, post.ID, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("A post with this slug already exists", err)
		}
		return apperrors.Internal("Failed to update blog post", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("Blog post", nil)
	}
	return nil
}

func (r *mongoBlogRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return apperrors.NotFound("Blog post", nil)
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Internal("Failed to delete blog post", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("Blog post", nil)
	}
	return nil
}
