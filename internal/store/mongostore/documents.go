package mongostore

import (
	"fmt"
	"time"

	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are stored as strings to keep their exact decimal value.

type itemDocument struct {
	Name          string `bson:"name"`
	Amount        string `bson:"amount"`
	IsRecurring   bool   `bson:"is_recurring"`
	Frequency     string `bson:"frequency"`
	RecurringType string `bson:"recurring_type"`
	Provider      string `bson:"provider,omitempty"`
}

type itemList []itemDocument

type budgetDocument struct {
	ID                string         `bson:"_id"`
	OwnerID           string         `bson:"owner_id"`
	Year              int            `bson:"year"`
	Month             int            `bson:"month"`
	Income            string         `bson:"income"`
	NeedsPercentage   int            `bson:"needs_percentage"`
	WantsPercentage   int            `bson:"wants_percentage"`
	SavingsPercentage int            `bson:"savings_percentage"`
	NeedsItems        []itemDocument `bson:"needs_items"`
	WantsItems        []itemDocument `bson:"wants_items"`
	SavingsItems      []itemDocument `bson:"savings_items"`
	ActualNeeds       string         `bson:"actual_needs"`
	ActualWants       string         `bson:"actual_wants"`
	ActualSavings     string         `bson:"actual_savings"`
	Notes             string         `bson:"notes,omitempty"`
	TemplateID        string         `bson:"template_id,omitempty"`
	CreatedAt         time.Time      `bson:"created_at"`
	UpdatedAt         time.Time      `bson:"updated_at"`
}

type templateDocument struct {
	ID                string         `bson:"_id"`
	OwnerID           string         `bson:"owner_id"`
	TemplateName      string         `bson:"template_name"`
	NeedsPercentage   int            `bson:"needs_percentage"`
	WantsPercentage   int            `bson:"wants_percentage"`
	SavingsPercentage int            `bson:"savings_percentage"`
	NeedsItems        []itemDocument `bson:"needs_items"`
	WantsItems        []itemDocument `bson:"wants_items"`
	SavingsItems      []itemDocument `bson:"savings_items"`
	CreatedAt         time.Time      `bson:"created_at"`
	UpdatedAt         time.Time      `bson:"updated_at"`
}

func newItemDocuments(items models.Items) []itemDocument {
	docs := make([]itemDocument, 0, len(items))
	for _, i := range items {
		docs = append(docs, itemDocument{
			Name:          i.Name,
			Amount:        i.Amount.String(),
			IsRecurring:   i.IsRecurring,
			Frequency:     string(i.Frequency),
			RecurringType: string(i.RecurringType),
			Provider:      i.Provider,
		})
	}
	return docs
}

func (docs itemList) model() (models.Items, error) {
	items := make(models.Items, 0, len(docs))
	for _, d := range docs {
		amount, err := decimal.NewFromString(d.Amount)
		if err != nil {
			return nil, fmt.Errorf("amount of item %q: %w", d.Name, err)
		}

		items = append(items, models.BudgetItem{
			Name:          d.Name,
			Amount:        amount,
			IsRecurring:   d.IsRecurring,
			Frequency:     types.Frequency(d.Frequency),
			RecurringType: types.RecurringType(d.RecurringType),
			Provider:      d.Provider,
		})
	}
	return items, nil
}

func newBudgetDocument(b models.MonthlyBudget) budgetDocument {
	doc := budgetDocument{
		ID:                b.ID.String(),
		OwnerID:           b.OwnerID,
		Year:              b.Year,
		Month:             b.Month,
		Income:            b.Income.String(),
		NeedsPercentage:   b.NeedsPercentage,
		WantsPercentage:   b.WantsPercentage,
		SavingsPercentage: b.SavingsPercentage,
		NeedsItems:        newItemDocuments(b.NeedsItems),
		WantsItems:        newItemDocuments(b.WantsItems),
		SavingsItems:      newItemDocuments(b.SavingsItems),
		ActualNeeds:       b.ActualNeeds.String(),
		ActualWants:       b.ActualWants.String(),
		ActualSavings:     b.ActualSavings.String(),
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.TemplateID != uuid.Nil {
		doc.TemplateID = b.TemplateID.String()
	}

	return doc
}

func (d budgetDocument) model() (models.MonthlyBudget, error) {
	var err error
	b := models.MonthlyBudget{
		OwnerID:           d.OwnerID,
		Year:              d.Year,
		Month:             d.Month,
		NeedsPercentage:   d.NeedsPercentage,
		WantsPercentage:   d.WantsPercentage,
		SavingsPercentage: d.SavingsPercentage,
		Notes:             d.Notes,
	}
	b.CreatedAt = d.CreatedAt.UTC()
	b.UpdatedAt = d.UpdatedAt.UTC()

	if b.ID, err = uuid.Parse(d.ID); err != nil {
		return b, err
	}

	if d.TemplateID != "" {
		if b.TemplateID, err = uuid.Parse(d.TemplateID); err != nil {
			return b, err
		}
	}

	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&b.Income, d.Income},
		{&b.ActualNeeds, d.ActualNeeds},
		{&b.ActualWants, d.ActualWants},
		{&b.ActualSavings, d.ActualSavings},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return b, err
		}
	}

	for _, l := range []struct {
		dst *models.Items
		src []itemDocument
	}{
		{&b.NeedsItems, d.NeedsItems},
		{&b.WantsItems, d.WantsItems},
		{&b.SavingsItems, d.SavingsItems},
	} {
		if *l.dst, err = itemList(l.src).model(); err != nil {
			return b, err
		}
	}

	return b, nil
}

func newTemplateDocument(t models.BudgetTemplate) templateDocument {
	return templateDocument{
		ID:                t.ID.String(),
		OwnerID:           t.OwnerID,
		TemplateName:      t.TemplateName,
		NeedsPercentage:   t.NeedsPercentage,
		WantsPercentage:   t.WantsPercentage,
		SavingsPercentage: t.SavingsPercentage,
		NeedsItems:        newItemDocuments(t.NeedsItems),
		WantsItems:        newItemDocuments(t.WantsItems),
		SavingsItems:      newItemDocuments(t.SavingsItems),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (d templateDocument) model() (models.BudgetTemplate, error) {
	var err error
	t := models.BudgetTemplate{
		OwnerID:           d.OwnerID,
		TemplateName:      d.TemplateName,
		NeedsPercentage:   d.NeedsPercentage,
		WantsPercentage:   d.WantsPercentage,
		SavingsPercentage: d.SavingsPercentage,
	}
	t.CreatedAt = d.CreatedAt.UTC()
	t.UpdatedAt = d.UpdatedAt.UTC()

	if t.ID, err = uuid.Parse(d.ID); err != nil {
		return t, err
	}

	for _, l := range []struct {
		dst *models.Items
		src []itemDocument
	}{
		{&t.NeedsItems, d.NeedsItems},
		{&t.WantsItems, d.WantsItems},
		{&t.SavingsItems, d.SavingsItems},
	} {
		if *l.dst, err = itemList(l.src).model(); err != nil {
			return t, err
		}
	}

	return t, nil
}
