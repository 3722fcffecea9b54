package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"medstore/internal/domain/entity"
	"medstore/internal/domain/repository"
	"medstore/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user

	return nil
}

func (f *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.IsAdmin() {
			count++
		}
	}

	return count, nil
}

// fakeProductRepo is an in-memory repository.ProductRepository. Find keeps
// insertion order and supports category filtering plus pagination, which
// is all the tests here exercise.
type fakeProductRepo struct {
	products []*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	return &fakeProductRepo{products: products}
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) Find(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	matched := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, product)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (f *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, product := range f.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
	}

	return categories, nil
}

func (f *fakeProductRepo) FindDiscounted(_ context.Context) ([]*entity.Product, error) {
	var discounted []*entity.Product
	for _, product := range f.products {
		if product.HasDiscount() {
			discounted = append(discounted, product)
		}
	}

	return discounted, nil
}

func (f *fakeProductRepo) FindFeatured(_ context.Context) ([]*entity.Product, error) {
	var featured []*entity.Product
	for _, product := range f.products {
		if product.Featured {
			featured = append(featured, product)
		}
	}

	return featured, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products = append(f.products, product)

	return nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

// fakeCartRepo is an in-memory repository.CartRepository mirroring the
// increment-or-append line semantics of the real store.
type fakeCartRepo struct {
	carts    map[string]*entity.Cart
	clearErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (f *fakeCartRepo) FindByUser(_ context.Context, userID string) (*entity.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}

	return nil, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, userID string, item entity.CartItem) error {
	cart, ok := f.carts[userID]
	if !ok {
		cart = entity.EmptyCart(userID)
		f.carts[userID] = cart
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity

			return nil
		}
	}
	cart.Items = append(cart.Items, item)

	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userID, productID string) error {
	cart, ok := f.carts[userID]
	if !ok {
		return nil
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, userID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.carts, userID)

	return nil
}

// fakeDiscountRepo is an in-memory repository.DiscountRepository.
type fakeDiscountRepo struct {
	codes []*entity.DiscountCode
}

func newFakeDiscountRepo(codes ...*entity.DiscountCode) *fakeDiscountRepo {
	return &fakeDiscountRepo{codes: codes}
}

func (f *fakeDiscountRepo) FindActiveByCode(_ context.Context, code string) (*entity.DiscountCode, error) {
	for _, discount := range f.codes {
		if discount.Code == code && discount.Active {
			return discount, nil
		}
	}

	return nil, repository.ErrDiscountNotFound
}

func (f *fakeDiscountRepo) FindActive(_ context.Context) ([]*entity.DiscountCode, error) {
	var active []*entity.DiscountCode
	for _, discount := range f.codes {
		if discount.Active {
			active = append(active, discount)
		}
	}

	return active, nil
}

func (f *fakeDiscountRepo) Create(_ context.Context, discount *entity.DiscountCode) error {
	for _, existing := range f.codes {
		if existing.Code == discount.Code {
			return repository.ErrDiscountCodeExists
		}
	}
	f.codes = append(f.codes, discount)

	return nil
}

func (f *fakeDiscountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.codes)), nil
}

// fakeOrderRepo is an in-memory repository.OrderRepository. Orders are
// returned newest first like the real store.
type fakeOrderRepo struct {
	orders []*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders = append([]*entity.Order{order}, f.orders...)

	return nil
}

func (f *fakeOrderRepo) FindByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	var mine []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			mine = append(mine, order)
		}
	}

	return mine, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

// fakeReviewRepo is an in-memory repository.ReviewRepository. Reviews are
// returned newest first like the real store.
type fakeReviewRepo struct {
	reviews []*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (f *fakeReviewRepo) FindByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	var mine []*entity.Review
	for _, review := range f.reviews {
		if review.ProductID == productID {
			mine = append(mine, review)
		}
	}

	return mine, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append([]*entity.Review{review}, f.reviews...)

	return nil
}

// fakeArticleRepo is an in-memory repository.ArticleRepository.
type fakeArticleRepo struct {
	articles []*entity.Article
}

func newFakeArticleRepo(articles ...*entity.Article) *fakeArticleRepo {
	return &fakeArticleRepo{articles: articles}
}

func (f *fakeArticleRepo) FindAll(_ context.Context) ([]*entity.Article, error) {
	return f.articles, nil
}

func (f *fakeArticleRepo) FindByID(_ context.Context, id string) (*entity.Article, error) {
	for _, article := range f.articles {
		if article.ID == id {
			return article, nil
		}
	}

	return nil, repository.ErrArticleNotFound
}

func (f *fakeArticleRepo) Create(_ context.Context, article *entity.Article) error {
	f.articles = append(f.articles, article)

	return nil
}

func (f *fakeArticleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.articles)), nil
}

// fakeServiceRepo is an in-memory repository.ServiceRepository.
type fakeServiceRepo struct {
	services []*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	return &fakeServiceRepo{services: services}
}

func (f *fakeServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	f.services = append(f.services, service)

	return nil
}

func (f *fakeServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

// fakeHasher is a transparent service.PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens for tests.
type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID string, _ []string) (string, error) {
	return "token:" + userID, nil
}

func (fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, nil
}
