package usecase

import (
	"context"
	"fmt"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	reviewRepo  repository.ReviewRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	reviewRepo repository.ReviewRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		reviewRepo:  reviewRepo,
	}
}

type ProductInput struct {
	Name                 string
	Description          string
	Category             string
	Type                 string
	Price                entity.Price
	ServiceableLocations []string
	Stock                int
	Images               []ImageInput
	Featured             bool
	Status               string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input ProductInput) (*entity.Product, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, errors.BadRequest("Invalid seller", nil)
	}
	if seller.Status != entity.SellerStatusActive {
		return nil, errors.Forbidden("Seller account is not active", nil)
	}

	if input.Type != entity.ProductKindGoods && input.Type != entity.ProductKindService {
		return nil, errors.BadRequest(fmt.Sprintf("Invalid product type: %s", input.Type), nil)
	}

	product := &entity.Product{
		SellerID:             seller.ID,
		Name:                 input.Name,
		Description:          input.Description,
		Category:             input.Category,
		Type:                 input.Type,
		Price:                input.Price,
		ServiceableLocations: input.ServiceableLocations,
		Stock:                input.Stock,
		Images:               buildImages(input.Images),
		Featured:             input.Featured,
	}

	status := input.Status
	if status == "" {
		status = entity.ProductStatusDraft
	}
	product.Status = product.NormalizeStatus(status)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}

	if err := uc.productRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("failed to record view for product %s: %v", id, err)
	}
	return product, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, criteria repository.ProductCriteria, sort string, page repository.Page) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, criteria, sort, page)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}
	if product.SellerID.Hex() != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.ServiceableLocations = input.ServiceableLocations
	product.Stock = input.Stock
	if len(input.Images) > 0 {
		product.Images = buildImages(input.Images)
	}
	product.Featured = input.Featured
	if input.Type != "" {
		product.Type = input.Type
	}
	if input.Status != "" {
		product.Status = product.NormalizeStatus(input.Status)
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID string) error {
	return uc.productRepo.DeleteBySeller(ctx, id, sellerID)
}

// ModerateProduct records the admin approval decision. Revoking approval
// while the product is active knocks it back to draft.
func (uc *ProductUseCase) ModerateProduct(ctx context.Context, id string, approved bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}

	product.IsApproved = approved
	status := product.NormalizeStatus(product.Status)

	if err := uc.productRepo.SetModeration(ctx, id, approved, status); err != nil {
		return nil, err
	}
	product.Status = status
	return product, nil
}
