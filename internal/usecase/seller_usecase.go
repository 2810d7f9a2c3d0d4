package usecase

import (
	"context"
	"fmt"
	"time"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/logger"
)

type SellerUseCase struct {
	sellerRepo repository.SellerRepository
	userRepo   repository.UserRepository
}

func NewSellerUseCase(sellerRepo repository.SellerRepository, userRepo repository.UserRepository) *SellerUseCase {
	return &SellerUseCase{
		sellerRepo: sellerRepo,
		userRepo:   userRepo,
	}
}

type RegisterSellerInput struct {
	Name          string
	Email         string
	Phone         string
	ServiceBranch string
	Location      string
	Bio           string
}

func (uc *SellerUseCase) RegisterSeller(ctx context.Context, userID string, input RegisterSellerInput) (*entity.Seller, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.BadRequest("Invalid user", nil)
	}

	existing, err := uc.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("A seller account already exists for this user", nil)
	}

	seller := &entity.Seller{
		UserID:        user.ID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		ServiceBranch: input.ServiceBranch,
		Location:      input.Location,
		Bio:           input.Bio,
		Status:        entity.SellerStatusPending,
	}

	if err := uc.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	// Role upgrade is cosmetic for routing; the seller record is the source
	// of truth, so a failure here is logged rather than fatal.
	user.Role = entity.RoleSeller
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("failed to upgrade user %s to seller role: %v", userID, err)
	}

	return seller, nil
}

func (uc *SellerUseCase) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.NotFound("Seller", nil)
	}
	return seller, nil
}

func (uc *SellerUseCase) GetSellerByUser(ctx context.Context, userID string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.NotFound("Seller", nil)
	}
	return seller, nil
}

func (uc *SellerUseCase) ListSellers(ctx context.Context, criteria repository.SellerCriteria, sort string, page repository.Page) ([]*entity.Seller, int64, error) {
	return uc.sellerRepo.List(ctx, criteria, sort, page)
}

type UpdateSellerInput struct {
	Name     string
	Phone    string
	Location string
	Bio      string
}

// UpdateSeller is owner-scoped: a seller edits only their own profile.
func (uc *SellerUseCase) UpdateSeller(ctx context.Context, id, userID string, input UpdateSellerInput) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil || seller.UserID.Hex() != userID {
		return nil, errors.NotFound("Seller", nil)
	}

	seller.Name = input.Name
	seller.Phone = input.Phone
	seller.Location = input.Location
	seller.Bio = input.Bio

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// VerifySeller records the admin verification decision.
func (uc *SellerUseCase) VerifySeller(ctx context.Context, id string, verified bool, notes string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.NotFound("Seller", nil)
	}

	seller.Verification = entity.SellerVerification{
		IsVerified: verified,
		Notes:      notes,
	}
	if verified {
		now := time.Now().UTC()
		seller.Verification.VerifiedAt = &now
	}

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (uc *SellerUseCase) SetSellerStatus(ctx context.Context, id, status string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.NotFound("Seller", nil)
	}

	if !entity.CanTransitionSeller(seller.Status, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Cannot move seller from %s to %s", seller.Status, status), nil)
	}

	seller.Status = status
	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}
