package v1

import (
	"fmt"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Year              int                 `json:"year" example:"2025" minimum:"1900" maximum:"9999"`                                                     // Year of the budget
	Month             int                 `json:"month" example:"3" minimum:"1" maximum:"12"`                                                            // Month of the budget, 1 is January
	Income            decimal.Decimal     `json:"income" example:"4000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Income for the month
	NeedsPercentage   int                 `json:"needsPercentage" example:"50" minimum:"0" maximum:"100"`                                                // Share of the income for needs
	WantsPercentage   int                 `json:"wantsPercentage" example:"30" minimum:"0" maximum:"100"`                                                // Share of the income for wants
	SavingsPercentage int                 `json:"savingsPercentage" example:"20" minimum:"0" maximum:"100"`                                              // Share of the income for savings
	NeedsItems        []models.BudgetItem `json:"needsItems"`                                                                                            // Items in the needs category
	WantsItems        []models.BudgetItem `json:"wantsItems"`                                                                                            // Items in the wants category
	SavingsItems      []models.BudgetItem `json:"savingsItems"`                                                                                          // Items in the savings category
	Notes             string              `json:"notes" example:"Car insurance is due" default:""`                                                       // Free text notes
	TemplateID        *uuid.UUID          `json:"templateId" example:"f8b93ce2-309f-4e99-8886-6ab960df99c3"`                                             // Template the budget was created from
}

func (editable BudgetEditable) model() models.MonthlyBudget {
	b := models.MonthlyBudget{
		Year:         editable.Year,
		Month:        editable.Month,
		Income:       editable.Income,
		NeedsItems:   editable.NeedsItems,
		WantsItems:   editable.WantsItems,
		SavingsItems: editable.SavingsItems,
		Notes:        editable.Notes,
	}

	b.SetPercentages(allocation.Percentages{
		Needs:   editable.NeedsPercentage,
		Wants:   editable.WantsPercentage,
		Savings: editable.SavingsPercentage,
	})

	if editable.TemplateID != nil {
		b.TemplateID = *editable.TemplateID
	}

	return b
}

type BudgetLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                 // The budget itself
	Rebalance string `json:"rebalance" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/rebalance"`  // Rebalance the percentages of the budget
	Overview  string `json:"overview" example:"https://example.com/api/v1/overview/2025"`                                            // Overview for the year of the budget
	Template  string `json:"template,omitempty" example:"https://example.com/api/v1/templates/f8b93ce2-309f-4e99-8886-6ab960df99c3"` // The template the budget was created from, if any
}

// Budget is the API v1 representation of a MonthlyBudget.
type Budget struct {
	models.DefaultModel
	OwnerID string `json:"ownerId" example:"auth0|5f7c8ec7c33c6c004bbafe82"` // Owner of the budget
	BudgetEditable
	Actuals   allocation.Amounts `json:"actuals"`                   // Sum of the items per category
	Targets   allocation.Amounts `json:"targets"`                   // Share of the income per category
	Remaining decimal.Decimal    `json:"remaining" example:"125.5"` // Income not allocated to any item
	Links     BudgetLinks        `json:"links"`
}

func newBudget(c *gin.Context, model models.MonthlyBudget) Budget {
	url := c.GetString(string(models.DBContextURL))

	b := Budget{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		BudgetEditable: BudgetEditable{
			Year:              model.Year,
			Month:             model.Month,
			Income:            model.Income,
			NeedsPercentage:   model.NeedsPercentage,
			WantsPercentage:   model.WantsPercentage,
			SavingsPercentage: model.SavingsPercentage,
			NeedsItems:        model.NeedsItems,
			WantsItems:        model.WantsItems,
			SavingsItems:      model.SavingsItems,
			Notes:             model.Notes,
		},
		Actuals:   model.Actuals(),
		Targets:   model.Percentages().Targets(model.Income),
		Remaining: model.Remaining(),
		Links: BudgetLinks{
			Self:      fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Rebalance: fmt.Sprintf("%s/v1/budgets/%s/rebalance", url, model.ID),
			Overview:  fmt.Sprintf("%s/v1/overview/%d", url, model.Year),
		},
	}

	if model.TemplateID != uuid.Nil {
		id := model.TemplateID
		b.TemplateID = &id
		b.Links.Template = fmt.Sprintf("%s/v1/templates/%s", url, id)
	}

	return b
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetDeleteResponse struct {
	Data  *BudgetDeleteCount `json:"data"`                                 // Result of the deletion
	Error *string            `json:"error" example:"the year must be set"` // The error, if any occurred
}

type BudgetDeleteCount struct {
	Year    int   `json:"year" example:"2024"`  // Year the budgets were deleted for
	Deleted int64 `json:"deleted" example:"12"` // Number of deleted budgets
}

type BudgetQueryFilter struct {
	Year         int    `form:"year"`                             // By year
	Month        int    `form:"month"`                            // By month
	Offset       uint   `form:"offset" filterField:"false"`       // The offset of the first Budget returned. Defaults to 0.
	Limit        int    `form:"limit" filterField:"false"`        // Maximum number of Budgets to return. Defaults to 50.
	CarryForward string `form:"carryForward" filterField:"false"` // Only used on creation
}

// RebalanceEditable sets one category of a budget to a new percentage.
type RebalanceEditable struct {
	Category string `json:"category" binding:"required" example:"needs" enums:"needs,wants,savings"` // The category that is set
	Value    *int   `json:"value" binding:"required" example:"60" minimum:"0" maximum:"100"`         // The new percentage for the category
}
