package v1

import (
	"fmt"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type TemplateEditable struct {
	TemplateName      string              `json:"templateName" example:"Lean months"`                       // Name of the template
	NeedsPercentage   int                 `json:"needsPercentage" example:"50" minimum:"0" maximum:"100"`   // Share of the income for needs
	WantsPercentage   int                 `json:"wantsPercentage" example:"30" minimum:"0" maximum:"100"`   // Share of the income for wants
	SavingsPercentage int                 `json:"savingsPercentage" example:"20" minimum:"0" maximum:"100"` // Share of the income for savings
	NeedsItems        []models.BudgetItem `json:"needsItems"`                                               // Items in the needs category
	WantsItems        []models.BudgetItem `json:"wantsItems"`                                               // Items in the wants category
	SavingsItems      []models.BudgetItem `json:"savingsItems"`                                             // Items in the savings category
}

func (editable TemplateEditable) model() models.BudgetTemplate {
	t := models.BudgetTemplate{
		TemplateName: editable.TemplateName,
		NeedsItems:   editable.NeedsItems,
		WantsItems:   editable.WantsItems,
		SavingsItems: editable.SavingsItems,
	}

	t.SetPercentages(allocation.Percentages{
		Needs:   editable.NeedsPercentage,
		Wants:   editable.WantsPercentage,
		Savings: editable.SavingsPercentage,
	})

	return t
}

type TemplateLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/templates/f8b93ce2-309f-4e99-8886-6ab960df99c3"`                // The template itself
	Duplicate string `json:"duplicate" example:"https://example.com/api/v1/templates/f8b93ce2-309f-4e99-8886-6ab960df99c3/duplicate"` // Create a copy of the template
}

// Template is the API v1 representation of a BudgetTemplate.
type Template struct {
	models.DefaultModel
	OwnerID string `json:"ownerId" example:"auth0|5f7c8ec7c33c6c004bbafe82"` // Owner of the template
	TemplateEditable
	Links TemplateLinks `json:"links"`
}

func newTemplate(c *gin.Context, model models.BudgetTemplate) Template {
	url := c.GetString(string(models.DBContextURL))

	return Template{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		TemplateEditable: TemplateEditable{
			TemplateName:      model.TemplateName,
			NeedsPercentage:   model.NeedsPercentage,
			WantsPercentage:   model.WantsPercentage,
			SavingsPercentage: model.SavingsPercentage,
			NeedsItems:        model.NeedsItems,
			WantsItems:        model.WantsItems,
			SavingsItems:      model.SavingsItems,
		},
		Links: TemplateLinks{
			Self:      fmt.Sprintf("%s/v1/templates/%s", url, model.ID),
			Duplicate: fmt.Sprintf("%s/v1/templates/%s/duplicate", url, model.ID),
		},
	}
}

type TemplateResponse struct {
	Data  *Template `json:"data"`                                                          // Data for the template
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TemplateListResponse struct {
	Data  []Template `json:"data"`                                             // List of templates
	Error *string    `json:"error" example:"a valid bearer token is required"` // The error, if any occurred
}

type TemplateQueryFilter struct {
	Name string `form:"name"` // Glob pattern for the name, e.g. "Lean*"
}
