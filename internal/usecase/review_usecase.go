package usecase

import (
	"context"
	"time"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type ReviewInput struct {
	Rating  int
	Title   string
	Content string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, productID, userID string, input ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}

	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID:  product.ID,
		SellerID:   product.SellerID,
		UserID:     uid,
		Rating:     input.Rating,
		Title:      input.Title,
		Content:    input.Content,
		IsApproved: true,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputeSummaries(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, criteria repository.ReviewCriteria, sort string, page repository.Page) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.List(ctx, criteria, sort, page)
}

// UpdateReview is author-scoped. A review that exists but belongs to
// someone else looks the same as one that doesn't exist.
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id, userID string, input ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil || review.UserID.Hex() != userID {
		return nil, errors.NotFound("Review", nil)
	}

	review.Rating = input.Rating
	review.Title = input.Title
	review.Content = input.Content

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputeSummaries(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id, userID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil || review.UserID.Hex() != userID {
		return errors.NotFound("Review", nil)
	}

	if err := uc.reviewRepo.DeleteByAuthor(ctx, id, userID); err != nil {
		return err
	}
	return uc.recomputeSummaries(ctx, review)
}

// AdminDeleteReview removes any review regardless of author.
func (uc *ReviewUseCase) AdminDeleteReview(ctx context.Context, id string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return errors.NotFound("Review", nil)
	}

	if err := uc.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recomputeSummaries(ctx, review)
}

// VoteReview records or switches the user's helpfulness vote.
func (uc *ReviewUseCase) VoteReview(ctx context.Context, id, userID, vote string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}

	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	changed, err := review.Helpfulness.ApplyVote(uid, vote)
	if err != nil {
		return nil, errors.BadRequest("Invalid vote type", err)
	}
	if !changed {
		return review, nil
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// RespondToReview attaches the owning seller's public reply.
func (uc *ReviewUseCase) RespondToReview(ctx context.Context, id, sellerID, content string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}
	if review.SellerID.Hex() != sellerID {
		return nil, errors.Forbidden("You can only respond to reviews of your own products", nil)
	}

	review.SellerResponse = &entity.SellerResponse{
		Content:     content,
		RespondedAt: time.Now().UTC(),
	}

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ModerateReview flips admin approval or visibility and refreshes the
// affected rating aggregates.
func (uc *ReviewUseCase) ModerateReview(ctx context.Context, id string, approved, hidden bool) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.NotFound("Review", nil)
	}

	review.IsApproved = approved
	review.IsHidden = hidden

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.recomputeSummaries(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) recomputeSummaries(ctx context.Context, review *entity.Review) error {
	if _, err := uc.reviewRepo.RecomputeProductSummary(ctx, review.ProductID.Hex()); err != nil {
		return err
	}
	_, err := uc.reviewRepo.RecomputeSellerSummary(ctx, review.SellerID.Hex())
	return err
}
