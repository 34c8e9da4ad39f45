// Package budget implements the operations on budgets and templates.
//
// Every operation takes the identity of the caller. Single records are
// only returned or modified after authz.Authorize confirmed that the caller
// owns them.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/recurring"
	"github.com/budget-rule/backend/internal/store"
	"github.com/budget-rule/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrIDRequired       = errors.New("the budget id must be set")
	ErrYearRequired     = errors.New("the year must be set")
	ErrValueOutOfRange  = errors.New("the new percentage must be between 0 and 100")
	ErrTemplateNotOwned = errors.New("the template does not exist or belongs to someone else")
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Store returns the underlying store.
func (s *Service) Store() store.Store {
	return s.store
}

func authenticated(id authz.Identity) error {
	if id.Subject == "" {
		return authz.ErrUnauthenticated
	}
	return nil
}

// CreateOptions control what a new budget inherits.
type CreateOptions struct {
	// InheritIncome copies the income of the previous budget of the year.
	InheritIncome bool

	// InheritPercentages copies the percentages of the template or, if no
	// template is used, of the previous budget of the year.
	InheritPercentages bool

	// InheritItems fills the item lists from the template or, if no
	// template is used, with the recurring items of the previous budget
	// of the year that are due in the new month.
	InheritItems bool
}

// InheritAll inherits everything that is available.
var InheritAll = CreateOptions{InheritIncome: true, InheritPercentages: true, InheritItems: true}

// ListBudgets returns the budgets of the caller, newest month first.
func (s *Service) ListBudgets(ctx context.Context, id authz.Identity, filter store.BudgetFilter) ([]models.MonthlyBudget, int64, error) {
	if err := authenticated(id); err != nil {
		return nil, 0, err
	}

	filter.OwnerID = id.Subject
	return s.store.ListBudgets(ctx, filter)
}

// GetBudget returns a budget owned by the caller.
func (s *Service) GetBudget(ctx context.Context, id authz.Identity, budgetID uuid.UUID) (models.MonthlyBudget, error) {
	if err := authenticated(id); err != nil {
		return models.MonthlyBudget{}, err
	}

	if budgetID == uuid.Nil {
		return models.MonthlyBudget{}, ErrIDRequired
	}

	b, err := s.store.GetBudget(ctx, budgetID)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	if err := authz.Authorize(id, b.OwnerID); err != nil {
		return models.MonthlyBudget{}, err
	}

	return b, nil
}

// CreateBudget creates a new budget for the caller.
//
// Depending on opts, income, percentages and items are taken from the
// template referenced by the budget or from the latest earlier budget of
// the same year. Percentages that are still unset after that default
// to 50/30/20.
func (s *Service) CreateBudget(ctx context.Context, id authz.Identity, b models.MonthlyBudget, opts CreateOptions) (models.MonthlyBudget, error) {
	if err := authenticated(id); err != nil {
		return models.MonthlyBudget{}, err
	}
	b.OwnerID = id.Subject

	exists, err := s.store.BudgetExists(ctx, b.OwnerID, b.Year, b.Month)
	if err != nil {
		return models.MonthlyBudget{}, err
	}
	if exists {
		return models.MonthlyBudget{}, models.ErrBudgetMonthNotUnique
	}

	err = s.inherit(ctx, id, &b, opts)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	if b.Percentages().IsZero() {
		b.SetPercentages(allocation.Default())
	}

	if err := b.Validate(); err != nil {
		return models.MonthlyBudget{}, err
	}

	// The unique index decides between concurrent creates
	err = s.store.CreateBudget(ctx, &b)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	log.Debug().Str("owner", b.OwnerID).Int("year", b.Year).Int("month", b.Month).Str("id", b.ID.String()).Msg("budget created")
	return b, nil
}

func (s *Service) inherit(ctx context.Context, id authz.Identity, b *models.MonthlyBudget, opts CreateOptions) error {
	if !opts.InheritIncome && !opts.InheritPercentages && !opts.InheritItems {
		return nil
	}

	if b.TemplateID != uuid.Nil && (opts.InheritPercentages || opts.InheritItems) {
		t, err := s.GetTemplate(ctx, id, b.TemplateID)
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, authz.ErrForbidden) {
				return fmt.Errorf("%w: %s", ErrTemplateNotOwned, b.TemplateID)
			}
			return err
		}

		if opts.InheritPercentages {
			b.SetPercentages(t.Percentages())
		}

		if opts.InheritItems {
			b.NeedsItems = t.NeedsItems.Clone()
			b.WantsItems = t.WantsItems.Clone()
			b.SavingsItems = t.SavingsItems.Clone()
		}

		// Everything but the income is covered by the template
		opts.InheritPercentages = false
		opts.InheritItems = false
	}

	if !opts.InheritIncome && !opts.InheritPercentages && !opts.InheritItems {
		return nil
	}

	prev, err := s.store.PreviousBudget(ctx, id.Subject, b.Year, b.Month)
	if errors.Is(err, models.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.InheritIncome {
		b.Income = prev.Income
	}

	if opts.InheritPercentages {
		b.SetPercentages(prev.Percentages())
	}

	if opts.InheritItems {
		b.NeedsItems, b.WantsItems, b.SavingsItems = recurring.CarryForwardAll(prev.NeedsItems, prev.WantsItems, prev.SavingsItems, prev.Month, b.Month)
	}

	return nil
}

// ReplaceBudget replaces all editable fields of a budget owned by the
// caller with the ones of b. Concurrent replaces are last write wins.
func (s *Service) ReplaceBudget(ctx context.Context, id authz.Identity, budgetID uuid.UUID, b models.MonthlyBudget) (models.MonthlyBudget, error) {
	existing, err := s.GetBudget(ctx, id, budgetID)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	b.DefaultModel = existing.DefaultModel
	b.OwnerID = existing.OwnerID

	if err := b.Validate(); err != nil {
		return models.MonthlyBudget{}, err
	}

	err = s.store.SaveBudget(ctx, &b)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	return b, nil
}

// RebalanceBudget sets the percentage of one category of a budget and
// rebalances the other two.
func (s *Service) RebalanceBudget(ctx context.Context, id authz.Identity, budgetID uuid.UUID, category types.Category, value int) (models.MonthlyBudget, error) {
	if value < 0 || value > 100 {
		return models.MonthlyBudget{}, fmt.Errorf("%w, got %d", ErrValueOutOfRange, value)
	}

	b, err := s.GetBudget(ctx, id, budgetID)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	b.SetPercentages(allocation.Rebalance(b.Percentages(), category, value))

	err = s.store.SaveBudget(ctx, &b)
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	return b, nil
}

// DeleteBudget deletes a budget owned by the caller.
func (s *Service) DeleteBudget(ctx context.Context, id authz.Identity, budgetID uuid.UUID) error {
	_, err := s.GetBudget(ctx, id, budgetID)
	if err != nil {
		return err
	}

	return s.store.DeleteBudget(ctx, budgetID)
}

// DeleteBudgetsForYear deletes all budgets of the caller in year and
// returns how many were deleted.
func (s *Service) DeleteBudgetsForYear(ctx context.Context, id authz.Identity, year int) (int64, error) {
	if err := authenticated(id); err != nil {
		return 0, err
	}

	if year == 0 {
		return 0, ErrYearRequired
	}

	count, err := s.store.DeleteBudgetsForYear(ctx, id.Subject, year)
	if err != nil {
		return 0, err
	}

	log.Info().Str("owner", id.Subject).Int("year", year).Int64("count", count).Msg("budgets deleted")
	return count, nil
}

// DeleteEverything deletes all budgets and templates of the caller.
func (s *Service) DeleteEverything(ctx context.Context, id authz.Identity) error {
	if err := authenticated(id); err != nil {
		return err
	}

	return s.store.DeleteOwner(ctx, id.Subject)
}
