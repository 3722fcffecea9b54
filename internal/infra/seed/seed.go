// Package seed bootstraps a fresh database with the store's sample
// catalog, editorial content, discount codes and the admin account.
package seed

import (
	"context"
	"log/slog"

	"medstore/config"
	"medstore/internal/domain/entity"
	"medstore/internal/domain/repository"
	"medstore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Seeder inserts initial data. Every step is idempotent: collections that
// already hold data are left untouched, so running it against a live
// database is safe.
type Seeder struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	articleRepo  repository.ArticleRepository
	serviceRepo  repository.ServiceRepository
	discountRepo repository.DiscountRepository
	hasher       service.PasswordHasher
	cfg          *config.Config
	logger       *slog.Logger
}

// Params holds dependencies for the Seeder, injected by Fx.
type Params struct {
	fx.In

	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	ArticleRepo  repository.ArticleRepository
	ServiceRepo  repository.ServiceRepository
	DiscountRepo repository.DiscountRepository
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// New is the constructor for the Seeder.
func New(params Params) *Seeder {
	return &Seeder{
		userRepo:     params.UserRepo,
		productRepo:  params.ProductRepo,
		articleRepo:  params.ArticleRepo,
		serviceRepo:  params.ServiceRepo,
		discountRepo: params.DiscountRepo,
		hasher:       params.Hasher,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// Run executes every seeding step in order.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("Starting data initialization")

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"products", s.seedProducts},
		{"articles", s.seedArticles},
		{"services", s.seedServices},
		{"discounts", s.seedDiscounts},
		{"admin", s.seedAdmin},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return errors.Wrapf(err, "failed to seed %s", step.name)
		}
	}

	s.logger.Info("Data initialization completed")

	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if count > 0 {
		s.logger.Debug("Products already present, skipping", slog.Int64("count", count))

		return nil
	}

	s.logger.Info("Inserting sample products")
	for _, product := range sampleProducts() {
		if err := s.productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}
	}

	return nil
}

func (s *Seeder) seedArticles(ctx context.Context) error {
	count, err := s.articleRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count articles")
	}
	if count > 0 {
		return nil
	}

	s.logger.Info("Inserting sample articles")
	for _, article := range sampleArticles() {
		if err := s.articleRepo.Create(ctx, article); err != nil {
			return errors.Wrap(err, "failed to create article")
		}
	}

	return nil
}

func (s *Seeder) seedServices(ctx context.Context) error {
	count, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count services")
	}
	if count > 0 {
		return nil
	}

	s.logger.Info("Inserting sample services")
	for _, svc := range sampleServices() {
		if err := s.serviceRepo.Create(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to create service")
		}
	}

	return nil
}

func (s *Seeder) seedDiscounts(ctx context.Context) error {
	count, err := s.discountRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count discounts")
	}
	if count > 0 {
		return nil
	}

	s.logger.Info("Inserting sample discount codes")
	for _, code := range sampleDiscounts() {
		if err := s.discountRepo.Create(ctx, code); err != nil {
			return errors.Wrap(err, "failed to create discount code")
		}
	}

	return nil
}

// seedAdmin creates the bootstrap administrator from config when no admin
// account exists yet.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	admins, err := s.userRepo.CountAdmins(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count admin users")
	}
	if admins > 0 {
		s.logger.Debug("Admin account already present, skipping")

		return nil
	}
	if s.cfg.Seed == nil || s.cfg.Seed.AdminUsername == "" || s.cfg.Seed.AdminPassword == "" {
		s.logger.Warn("No admin account exists and no seed credentials configured")

		return nil
	}

	hashed, err := s.hasher.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     s.cfg.Seed.AdminUsername,
		Email:        s.cfg.Seed.AdminEmail,
		PasswordHash: hashed,
		FullName:     s.cfg.Seed.AdminFullName,
		Phone:        s.cfg.Seed.AdminPhone,
		Role:         entity.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin user")
	}

	s.logger.Info("Admin account created", slog.String("username", admin.Username))

	return nil
}
