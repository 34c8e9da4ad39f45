package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-rule/backend/internal/allocation"
	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/httputil"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/recurring"
	"github.com/budget-rule/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterCalculatorRoutes registers the stateless calculation endpoints
// with the RouterGroup that is passed.
func (co Controller) RegisterCalculatorRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/rebalance", co.OptionsRebalance)
		r.POST("/rebalance", co.Rebalance)
	}

	{
		r.OPTIONS("/carry-forward", co.OptionsCarryForward)
		r.POST("/carry-forward", co.CarryForward)
	}
}

type RebalanceRequest struct {
	NeedsPercentage   int    `json:"needsPercentage" example:"50" minimum:"0" maximum:"100"`                  // Current share for needs
	WantsPercentage   int    `json:"wantsPercentage" example:"30" minimum:"0" maximum:"100"`                  // Current share for wants
	SavingsPercentage int    `json:"savingsPercentage" example:"20" minimum:"0" maximum:"100"`                // Current share for savings
	Category          string `json:"category" binding:"required" example:"needs" enums:"needs,wants,savings"` // The category that is set
	Value             *int   `json:"value" binding:"required" example:"60" minimum:"0" maximum:"100"`         // The new percentage for the category
}

type RebalanceResponse struct {
	Data  *allocation.Percentages `json:"data"`                                                         // The rebalanced percentages
	Error *string                 `json:"error" example:"the new percentage must be between 0 and 100"` // The error, if any occurred
}

type CarryForwardRequest struct {
	SourceMonth  int                 `json:"sourceMonth" binding:"required,min=1,max=12" example:"1"` // Month the items are taken from
	TargetMonth  int                 `json:"targetMonth" binding:"required,min=1,max=12" example:"4"` // Month the items are carried into
	NeedsItems   []models.BudgetItem `json:"needsItems"`                                              // Items in the needs category
	WantsItems   []models.BudgetItem `json:"wantsItems"`                                              // Items in the wants category
	SavingsItems []models.BudgetItem `json:"savingsItems"`                                            // Items in the savings category
}

type CarryForwardItems struct {
	NeedsItems   []models.BudgetItem `json:"needsItems"`   // Needs items due in the target month
	WantsItems   []models.BudgetItem `json:"wantsItems"`   // Wants items due in the target month
	SavingsItems []models.BudgetItem `json:"savingsItems"` // Savings items due in the target month
}

type CarryForwardResponse struct {
	Data  *CarryForwardItems `json:"data"`                                               // The items that are carried forward
	Error *string            `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculators
// @Success		204
// @Router			/v1/rebalance [options]
func (co Controller) OptionsRebalance(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Rebalance percentages
// @Description	Sets one category to a new percentage and splits the rest between the other two in proportion to their current values
// @Tags			Calculators
// @Accept			json
// @Produce		json
// @Success		200			{object}	RebalanceResponse
// @Failure		400			{object}	RebalanceResponse
// @Param			rebalance	body		RebalanceRequest	true	"Current percentages and the change"
// @Router			/v1/rebalance [post]
func (co Controller) Rebalance(c *gin.Context) {
	var req RebalanceRequest
	err := httputil.BindData(c, &req)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RebalanceResponse{
			Error: &s,
		})
		return
	}

	category, err := types.ParseCategory(req.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RebalanceResponse{
			Error: &s,
		})
		return
	}

	if *req.Value < 0 || *req.Value > 100 {
		s := fmt.Errorf("%w, got %d", budget.ErrValueOutOfRange, *req.Value).Error()
		c.JSON(http.StatusBadRequest, RebalanceResponse{
			Error: &s,
		})
		return
	}

	current := allocation.Percentages{
		Needs:   req.NeedsPercentage,
		Wants:   req.WantsPercentage,
		Savings: req.SavingsPercentage,
	}

	result := allocation.Rebalance(current, category, *req.Value)
	c.JSON(http.StatusOK, RebalanceResponse{Data: &result})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculators
// @Success		204
// @Router			/v1/carry-forward [options]
func (co Controller) OptionsCarryForward(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview carry-forward
// @Description	Returns the recurring items that would be carried from the source month into the target month
// @Tags			Calculators
// @Accept			json
// @Produce		json
// @Success		200		{object}	CarryForwardResponse
// @Failure		400		{object}	CarryForwardResponse
// @Param			items	body		CarryForwardRequest	true	"Items and months"
// @Router			/v1/carry-forward [post]
func (co Controller) CarryForward(c *gin.Context) {
	var req CarryForwardRequest
	err := httputil.BindData(c, &req)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CarryForwardResponse{
			Error: &s,
		})
		return
	}

	for _, items := range []models.Items{req.NeedsItems, req.WantsItems, req.SavingsItems} {
		if err := items.Validate(); err != nil {
			s := err.Error()
			c.JSON(status(err), CarryForwardResponse{
				Error: &s,
			})
			return
		}
	}

	needs, wants, savings := recurring.CarryForwardAll(req.NeedsItems, req.WantsItems, req.SavingsItems, req.SourceMonth, req.TargetMonth)
	c.JSON(http.StatusOK, CarryForwardResponse{Data: &CarryForwardItems{
		NeedsItems:   needs,
		WantsItems:   wants,
		SavingsItems: savings,
	}})
}
