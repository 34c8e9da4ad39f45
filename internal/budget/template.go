package budget

import (
	"context"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/store"
	"github.com/google/uuid"
)

// CopySuffix is appended to the name of duplicated templates.
const CopySuffix = " (Copy)"

// ListTemplates returns the templates of the caller, newest first.
func (s *Service) ListTemplates(ctx context.Context, id authz.Identity, filter store.TemplateFilter) ([]models.BudgetTemplate, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	filter.OwnerID = id.Subject
	return s.store.ListTemplates(ctx, filter)
}

// GetTemplate returns a template owned by the caller.
func (s *Service) GetTemplate(ctx context.Context, id authz.Identity, templateID uuid.UUID) (models.BudgetTemplate, error) {
	if err := authenticated(id); err != nil {
		return models.BudgetTemplate{}, err
	}

	t, err := s.store.GetTemplate(ctx, templateID)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	if err := authz.Authorize(id, t.OwnerID); err != nil {
		return models.BudgetTemplate{}, err
	}

	return t, nil
}

// CreateTemplate creates a template for the caller. Unset percentages
// default to 50/30/20.
func (s *Service) CreateTemplate(ctx context.Context, id authz.Identity, t models.BudgetTemplate) (models.BudgetTemplate, error) {
	if err := authenticated(id); err != nil {
		return models.BudgetTemplate{}, err
	}
	t.OwnerID = id.Subject

	if t.Percentages().IsZero() {
		t.SetPercentages(allocation.Default())
	}

	if err := t.Validate(); err != nil {
		return models.BudgetTemplate{}, err
	}

	err := s.store.CreateTemplate(ctx, &t)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	return t, nil
}

// ReplaceTemplate replaces all editable fields of a template owned by the caller.
func (s *Service) ReplaceTemplate(ctx context.Context, id authz.Identity, templateID uuid.UUID, t models.BudgetTemplate) (models.BudgetTemplate, error) {
	existing, err := s.GetTemplate(ctx, id, templateID)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	t.DefaultModel = existing.DefaultModel
	t.OwnerID = existing.OwnerID

	if err := t.Validate(); err != nil {
		return models.BudgetTemplate{}, err
	}

	err = s.store.SaveTemplate(ctx, &t)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	return t, nil
}

// DuplicateTemplate creates a copy of a template owned by the caller.
func (s *Service) DuplicateTemplate(ctx context.Context, id authz.Identity, templateID uuid.UUID) (models.BudgetTemplate, error) {
	original, err := s.GetTemplate(ctx, id, templateID)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	duplicate := models.BudgetTemplate{
		OwnerID:      original.OwnerID,
		TemplateName: original.TemplateName + CopySuffix,
		NeedsItems:   original.NeedsItems.Clone(),
		WantsItems:   original.WantsItems.Clone(),
		SavingsItems: original.SavingsItems.Clone(),
	}
	duplicate.SetPercentages(original.Percentages())

	err = s.store.CreateTemplate(ctx, &duplicate)
	if err != nil {
		return models.BudgetTemplate{}, err
	}

	return duplicate, nil
}

// DeleteTemplate deletes a template owned by the caller. Budgets created
// from it keep their template id.
func (s *Service) DeleteTemplate(ctx context.Context, id authz.Identity, templateID uuid.UUID) error {
	_, err := s.GetTemplate(ctx, id, templateID)
	if err != nil {
		return err
	}

	return s.store.DeleteTemplate(ctx, templateID)
}
