package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
)

// In-memory repository fakes keyed by hex id. They mirror the storage
// contract: lookups return (nil, nil) when absent, scoped mutations report
// NotFound, and unique constraints surface as BadRequest.

type fakeListingRepo struct {
	listings map[string]*entity.Listing
	views    map[string]int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		listings: map[string]*entity.Listing{},
		views:    map[string]int{},
	}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	for _, existing := range r.listings {
		if existing.Slug == listing.Slug {
			return errors.BadRequest("A listing with this slug already exists", nil)
		}
	}
	r.listings[listing.ID.Hex()] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	return r.listings[id], nil
}

func (r *fakeListingRepo) GetBySlug(_ context.Context, slug string) (*entity.Listing, error) {
	for _, listing := range r.listings {
		if listing.Slug == slug {
			return listing, nil
		}
	}
	return nil, nil
}

func (r *fakeListingRepo) List(_ context.Context, _ repository.ListingCriteria, _ string, _ repository.Page) ([]*entity.Listing, int64, error) {
	out := make([]*entity.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		out = append(out, listing)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID.Hex()]; !ok {
		return errors.NotFound("Listing", nil)
	}
	r.listings[listing.ID.Hex()] = listing
	return nil
}

func (r *fakeListingRepo) Archive(_ context.Context, id string) error {
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Status = entity.ListingStatusArchived
	return nil
}

func (r *fakeListingRepo) IncrementViews(_ context.Context, id string) error {
	r.views[id]++
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*entity.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings[booking.ID.Hex()] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) List(_ context.Context, _ repository.BookingCriteria, _ string, _ repository.Page) ([]*entity.Booking, int64, error) {
	out := make([]*entity.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		out = append(out, booking)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) SetStatus(_ context.Context, id, status string) error {
	booking, ok := r.bookings[id]
	if !ok {
		return errors.NotFound("Booking", nil)
	}
	booking.Status = status
	return nil
}

func (r *fakeBookingRepo) CancelByCustomer(_ context.Context, id, customerEmail string) error {
	booking, ok := r.bookings[id]
	if !ok || booking.CustomerEmail != customerEmail || booking.Status == entity.BookingStatusCancelled {
		return errors.NotFound("Booking", nil)
	}
	booking.Status = entity.BookingStatusCancelled
	return nil
}

type fakeBlogRepo struct {
	posts map[string]*entity.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[string]*entity.BlogPost{}}
}

func (r *fakeBlogRepo) Create(_ context.Context, post *entity.BlogPost) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return errors.BadRequest("A post with this slug already exists", nil)
		}
	}
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakeBlogRepo) GetByID(_ context.Context, id string) (*entity.BlogPost, error) {
	return r.posts[id], nil
}

func (r *fakeBlogRepo) GetBySlug(_ context.Context, slug string) (*entity.BlogPost, error) {
	for _, post := range r.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) List(_ context.Context, _ repository.BlogCriteria, _ string, _ repository.Page) ([]*entity.BlogPost, int64, error) {
	out := make([]*entity.BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		out = append(out, post)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBlogRepo) Update(_ context.Context, post *entity.BlogPost) error {
	if _, ok := r.posts[post.ID.Hex()]; !ok {
		return errors.NotFound("Post", nil)
	}
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return errors.NotFound("Post", nil)
	}
	delete(r.posts, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
	created       []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	r.notifications[notification.ID.Hex()] = notification
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	return r.notifications[id], nil
}

func (r *fakeNotificationRepo) List(_ context.Context, _ repository.NotificationCriteria, _ string, _ repository.Page) ([]*entity.Notification, int64, error) {
	out := make([]*entity.Notification, 0, len(r.notifications))
	for _, notification := range r.notifications {
		out = append(out, notification)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) SetStatus(_ context.Context, id, status string) error {
	notification, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	notification.Status = status
	return nil
}

func (r *fakeNotificationRepo) MarkEmailSent(_ context.Context, id string, sentAt time.Time) error {
	notification, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	notification.EmailSent = true
	notification.EmailSentAt = &sentAt
	return nil
}

type fakeSellerRepo struct {
	sellers map[string]*entity.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: map[string]*entity.Seller{}}
}

func (r *fakeSellerRepo) Create(_ context.Context, seller *entity.Seller) error {
	if seller.ID.IsZero() {
		seller.ID = primitive.NewObjectID()
	}
	for _, existing := range r.sellers {
		if existing.Email == seller.Email {
			return errors.BadRequest("A seller with this email already exists", nil)
		}
	}
	r.sellers[seller.ID.Hex()] = seller
	return nil
}

func (r *fakeSellerRepo) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	return r.sellers[id], nil
}

func (r *fakeSellerRepo) GetByUserID(_ context.Context, userID string) (*entity.Seller, error) {
	for _, seller := range r.sellers {
		if seller.UserID.Hex() == userID {
			return seller, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerRepo) List(_ context.Context, _ repository.SellerCriteria, _ string, _ repository.Page) ([]*entity.Seller, int64, error) {
	out := make([]*entity.Seller, 0, len(r.sellers))
	for _, seller := range r.sellers {
		out = append(out, seller)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSellerRepo) Update(_ context.Context, seller *entity.Seller) error {
	if _, ok := r.sellers[seller.ID.Hex()]; !ok {
		return errors.NotFound("Seller", nil)
	}
	r.sellers[seller.ID.Hex()] = seller
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID.Hex()] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductCriteria, _ string, _ repository.Page) ([]*entity.Product, int64, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, product)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID.Hex()]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID.Hex()] = product
	return nil
}

func (r *fakeProductRepo) DeleteBySeller(_ context.Context, id, sellerID string) error {
	product, ok := r.products[id]
	if !ok || product.SellerID.Hex() != sellerID {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) SetModeration(_ context.Context, id string, approved bool, status string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.IsApproved = approved
	product.Status = status
	return nil
}

func (r *fakeProductRepo) IncrementViews(_ context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Views++
	return nil
}

type fakeReviewRepo struct {
	reviews           map[string]*entity.Review
	productRecomputes []string
	sellerRecomputes  []string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.ProductID == review.ProductID && existing.UserID == review.UserID {
			return errors.BadRequest("You have already reviewed this product", nil)
		}
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews[review.ID.Hex()] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	return r.reviews[id], nil
}

func (r *fakeReviewRepo) List(_ context.Context, _ repository.ReviewCriteria, _ string, _ repository.Page) ([]*entity.Review, int64, error) {
	out := make([]*entity.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		out = append(out, review)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	if _, ok := r.reviews[review.ID.Hex()]; !ok {
		return errors.NotFound("Review", nil)
	}
	r.reviews[review.ID.Hex()] = review
	return nil
}

func (r *fakeReviewRepo) DeleteByAuthor(_ context.Context, id, userID string) error {
	review, ok := r.reviews[id]
	if !ok || review.UserID.Hex() != userID {
		return errors.NotFound("Review", nil)
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) RecomputeProductSummary(_ context.Context, productID string) (*entity.RatingSummary, error) {
	r.productRecomputes = append(r.productRecomputes, productID)
	return &entity.RatingSummary{}, nil
}

func (r *fakeReviewRepo) RecomputeSellerSummary(_ context.Context, sellerID string) (*entity.RatingSummary, error) {
	r.sellerRecomputes = append(r.sellerRecomputes, sellerID)
	return &entity.RatingSummary{}, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID.Hex()] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ repository.OrderCriteria, _ string, _ repository.Page) ([]*entity.Order, int64, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) SetStatus(_ context.Context, id, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.BadRequest("An account with this email already exists", nil)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID.Hex()] = user
	return nil
}
