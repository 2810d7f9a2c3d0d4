package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nevoyage/internal/domain/entity"
	"nevoyage/pkg/errors"
)

func storedProduct(repo *fakeProductRepo) *entity.Product {
	product := &entity.Product{
		ID:       primitive.NewObjectID(),
		SellerID: primitive.NewObjectID(),
		Name:     "Smoked pork",
	}
	repo.products[product.ID.Hex()] = product
	return product
}

func TestCreateReviewBindsSellerAndRecomputes(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	userID := primitive.NewObjectID()

	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), userID.Hex(), ReviewInput{
		Rating:  5,
		Content: "Excellent",
	})

	assert.NoError(t, err)
	assert.Equal(t, product.SellerID, review.SellerID)
	assert.True(t, review.IsApproved)
	assert.False(t, review.IsHidden)

	assert.Equal(t, []string{product.ID.Hex()}, reviewRepo.productRecomputes)
	assert.Equal(t, []string{product.SellerID.Hex()}, reviewRepo.sellerRecomputes)
}

func TestCreateReviewSecondReviewRejected(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	userID := primitive.NewObjectID()

	_, err := uc.CreateReview(context.Background(), product.ID.Hex(), userID.Hex(), ReviewInput{Rating: 5, Content: "First"})
	assert.NoError(t, err)

	_, err = uc.CreateReview(context.Background(), product.ID.Hex(), userID.Hex(), ReviewInput{Rating: 1, Content: "Second"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	uc := NewReviewUseCase(newFakeReviewRepo(), newFakeProductRepo())

	_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 4, Content: "x"})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	uc := NewReviewUseCase(newFakeReviewRepo(), newFakeProductRepo())

	_, err := uc.CreateReview(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 6, Content: "x"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateReviewByStrangerReadsAsNotFound(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	author := primitive.NewObjectID()
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), author.Hex(), ReviewInput{Rating: 4, Content: "Good"})
	assert.NoError(t, err)

	_, err = uc.UpdateReview(context.Background(), review.ID.Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 1, Content: "Bad"})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Equal(t, 4, review.Rating)
}

func TestDeleteReviewRecomputesSummaries(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	author := primitive.NewObjectID()
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), author.Hex(), ReviewInput{Rating: 4, Content: "Good"})
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteReview(context.Background(), review.ID.Hex(), author.Hex()))

	assert.Len(t, reviewRepo.productRecomputes, 2)
	assert.Len(t, reviewRepo.sellerRecomputes, 2)
	assert.Empty(t, reviewRepo.reviews)
}

func TestVoteReviewInvalidValue(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 4, Content: "Good"})
	assert.NoError(t, err)

	_, err = uc.VoteReview(context.Background(), review.ID.Hex(), primitive.NewObjectID().Hex(), "maybe")

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestVoteReviewSwitchKeepsVoterCount(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 4, Content: "Good"})
	assert.NoError(t, err)

	voter := primitive.NewObjectID()
	_, err = uc.VoteReview(context.Background(), review.ID.Hex(), voter.Hex(), entity.VoteHelpful)
	assert.NoError(t, err)

	updated, err := uc.VoteReview(context.Background(), review.ID.Hex(), voter.Hex(), entity.VoteNotHelpful)
	assert.NoError(t, err)

	assert.Equal(t, 0, updated.Helpfulness.Helpful)
	assert.Equal(t, 1, updated.Helpfulness.NotHelpful)
	assert.Len(t, updated.Helpfulness.Voters, 1)
}

func TestRespondToReviewWrongSellerForbidden(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 2, Content: "Meh"})
	assert.NoError(t, err)

	_, err = uc.RespondToReview(context.Background(), review.ID.Hex(), primitive.NewObjectID().Hex(), "Sorry to hear")
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	responded, err := uc.RespondToReview(context.Background(), review.ID.Hex(), product.SellerID.Hex(), "Sorry to hear")
	assert.NoError(t, err)
	assert.NotNil(t, responded.SellerResponse)
	assert.Equal(t, "Sorry to hear", responded.SellerResponse.Content)
}

func TestModerateReviewRecomputesSummaries(t *testing.T) {
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewReviewUseCase(reviewRepo, productRepo)

	product := storedProduct(productRepo)
	review, err := uc.CreateReview(context.Background(), product.ID.Hex(), primitive.NewObjectID().Hex(), ReviewInput{Rating: 1, Content: "Spam"})
	assert.NoError(t, err)

	moderated, err := uc.ModerateReview(context.Background(), review.ID.Hex(), false, true)

	assert.NoError(t, err)
	assert.False(t, moderated.IsApproved)
	assert.True(t, moderated.IsHidden)
	assert.False(t, moderated.Visible())
	assert.Len(t, reviewRepo.productRecomputes, 2)
}
