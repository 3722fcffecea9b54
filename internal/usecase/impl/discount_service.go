package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	discountRepo repository.DiscountRepository
	now          func() time.Time
	logger       *slog.Logger
}

// DiscountServiceParams holds dependencies for discountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	DiscountRepo repository.DiscountRepository
	Logger       *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: params.DiscountRepo,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// quoteDiscount computes the discount a code grants on an order amount.
// The discount amount rounds down, so the customer always pays at least
// amount*(100-percentage)/100 rounded up.
func quoteDiscount(code *entity.DiscountCode, amount int) *usecase.DiscountQuote {
	discountAmount := amount * code.Percentage / 100

	return &usecase.DiscountQuote{
		Valid:              true,
		Code:               code.Code,
		DiscountPercentage: code.Percentage,
		DiscountAmount:     discountAmount,
		FinalAmount:        amount - discountAmount,
		Description:        code.Description,
	}
}

// resolveCode loads an active, unexpired code and checks the order amount
// against its minimum. Shared between Validate and order placement.
func (srv *discountService) resolveCode(ctx context.Context, code string, amount int) (*entity.DiscountCode, error) {
	discount, err := srv.discountRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountInvalid
		}
		srv.log(ctx).Error("Failed to load discount code", slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load discount code")
	}

	if discount.ExpiresBefore(srv.now()) {
		srv.log(ctx).Debug("Rejected expired discount code", slog.String("code", code))

		return nil, domainerrors.ErrDiscountInvalid
	}

	if amount < discount.MinAmount {
		return nil, domainerrors.NewDiscountBelowMinimumError(discount.MinAmount)
	}

	return discount, nil
}

// Validate checks a code against an order amount and returns the computed discount.
func (srv *discountService) Validate(ctx context.Context, input *usecase.ValidateDiscountInput) (*usecase.DiscountQuote, error) {
	discount, err := srv.resolveCode(ctx, input.Code, input.Amount)
	if err != nil {
		return nil, err
	}

	return quoteDiscount(discount, input.Amount), nil
}

// ListActive returns every active, unexpired code.
func (srv *discountService) ListActive(ctx context.Context) ([]*entity.DiscountCode, error) {
	codes, err := srv.discountRepo.FindActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list discount codes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list discount codes")
	}

	now := srv.now()
	current := make([]*entity.DiscountCode, 0, len(codes))
	for _, code := range codes {
		if !code.ExpiresBefore(now) {
			current = append(current, code)
		}
	}

	return current, nil
}

// Create registers a new discount code.
func (srv *discountService) Create(ctx context.Context, input *usecase.CreateDiscountInput) (*entity.DiscountCode, error) {
	if input.ValidUntil != "" {
		if _, err := time.Parse("2006-01-02", input.ValidUntil); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("valid_until must be a YYYY-MM-DD date")
		}
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	discount := &entity.DiscountCode{
		ID:          uuid.New().String(),
		Code:        input.Code,
		Percentage:  input.Percentage,
		Description: input.Description,
		ValidUntil:  input.ValidUntil,
		MinAmount:   input.MinAmount,
		Active:      active,
	}

	if err := srv.discountRepo.Create(ctx, discount); err != nil {
		if errors.Is(err, repository.ErrDiscountCodeExists) {
			srv.log(ctx).Warn("Rejected duplicate discount code", slog.String("code", input.Code))

			return nil, domainerrors.ErrDiscountCodeExists
		}
		srv.log(ctx).Error("Failed to create discount code", slog.String("code", input.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create discount code")
	}

	srv.log(ctx).Info("Discount code created", slog.String("code", discount.Code), slog.Int("percentage", discount.Percentage))

	return discount, nil
}
