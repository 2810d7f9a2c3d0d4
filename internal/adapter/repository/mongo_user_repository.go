package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	apperrors "nevoyage/pkg/errors"
)

type mongoUserRepository struct {
	baseRepository[entity.User]
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{baseRepository[entity.User]{coll: db.Collection(collUsers)}}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("An account with this email already exists", err)
		}
		return apperrors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findByID(ctx, id)
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) Update(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		return apperrors.BadRequest("User id is required", nil)
	}

	update := bson.M{
		"name":         user.Name,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"role":         user.Role,
		"updatedAt":    time.Now().UTC(),
	}
	result, err := r.coll.UpdateByID(ctx, user.ID, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.BadRequest("An account with this email already exists", err)
		}
		return apperrors.Internal("Failed to update user", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("User", nil)
	}
	return nil
}
