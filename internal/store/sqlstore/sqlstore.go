// Package sqlstore implements store.Store on top of gorm and SQLite.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New returns a Store using db. The database needs to be set up with
// models.Connect so that errors are translated.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListBudgets(ctx context.Context, filter store.BudgetFilter) ([]models.MonthlyBudget, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&models.MonthlyBudget{}).
		Where(&models.MonthlyBudget{OwnerID: filter.OwnerID, Year: filter.Year, Month: filter.Month}).
		Order("year DESC, month DESC")

	q = q.Offset(filter.Offset)

	limit := -1
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var budgets []models.MonthlyBudget
	err := q.Find(&budgets).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	return budgets, count, nil
}

func (s *Store) GetBudget(ctx context.Context, id uuid.UUID) (models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	err := s.db.WithContext(ctx).First(&budget, "id = ?", id).Error
	return budget, err
}

func (s *Store) PreviousBudget(ctx context.Context, ownerID string, year, month int) (models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND year = ? AND month < ?", ownerID, year, month).
		Order("month DESC").
		First(&budget).Error

	return budget, err
}

func (s *Store) BudgetExists(ctx context.Context, ownerID string, year, month int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.MonthlyBudget{}).
		Where(&models.MonthlyBudget{OwnerID: ownerID, Year: year, Month: month}).
		Count(&count).Error

	return count > 0, err
}

func (s *Store) CreateBudget(ctx context.Context, budget *models.MonthlyBudget) error {
	return s.db.WithContext(ctx).Create(budget).Error
}

func (s *Store) SaveBudget(ctx context.Context, budget *models.MonthlyBudget) error {
	return s.db.WithContext(ctx).Save(budget).Error
}

func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Delete(&models.MonthlyBudget{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound)
	}

	return nil
}

func (s *Store) DeleteBudgetsForYear(ctx context.Context, ownerID string, year int) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("owner_id = ? AND year = ?", ownerID, year).
		Delete(&models.MonthlyBudget{})

	return tx.RowsAffected, tx.Error
}

func (s *Store) ListTemplates(ctx context.Context, filter store.TemplateFilter) ([]models.BudgetTemplate, error) {
	var templates []models.BudgetTemplate
	err := s.db.WithContext(ctx).
		Where(&models.BudgetTemplate{OwnerID: filter.OwnerID}).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}

	matching := make([]models.BudgetTemplate, 0, len(templates))
	for _, t := range templates {
		if filter.MatchName(t.TemplateName) {
			matching = append(matching, t)
		}
	}

	return matching, nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (models.BudgetTemplate, error) {
	var template models.BudgetTemplate
	err := s.db.WithContext(ctx).First(&template, "id = ?", id).Error
	return template, err
}

func (s *Store) CreateTemplate(ctx context.Context, template *models.BudgetTemplate) error {
	return s.db.WithContext(ctx).Create(template).Error
}

func (s *Store) SaveTemplate(ctx context.Context, template *models.BudgetTemplate) error {
	return s.db.WithContext(ctx).Save(template).Error
}

func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Delete(&models.BudgetTemplate{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w template matching your query", models.ErrResourceNotFound)
	}

	return nil
}

func (s *Store) DeleteOwner(ctx context.Context, ownerID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.MonthlyBudget{}, &models.BudgetTemplate{}} {
			err := tx.Where("owner_id = ?", ownerID).Delete(model).Error
			if err != nil {
				return err
			}
		}
		return nil
	})

	// Errors from starting or committing the transaction bypass the callbacks
	if err != nil && !errors.Is(err, models.ErrGeneral) {
		return fmt.Errorf("%w: %s", models.ErrGeneral, err)
	}

	return err
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	err = sqlDB.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrGeneral, err)
	}

	return nil
}

func (s *Store) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
