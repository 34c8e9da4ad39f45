package v1

import (
	"net/http"

	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/httputil"
	"github.com/budget-rule/backend/internal/store"
	"github.com/budget-rule/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
		r.DELETE("", co.DeleteBudgetsForYear)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PUT("/:id", co.ReplaceBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.OPTIONS("/:id/rebalance", co.OptionsBudgetRebalance)
		r.POST("/:id/rebalance", co.RebalanceBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, err := pathID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/rebalance [options]
func (co Controller) OptionsBudgetRebalance(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create budget
// @Description	Creates a new budget for a month.
// @Description	Unless carryForward is false, income, percentages and items that are not part of the request
// @Description	are taken from the template referenced by templateId or the latest earlier budget of the same year.
// @Description	Of the earlier budget, only recurring items that are due in the new month are taken.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201				{object}	BudgetResponse
// @Failure		400				{object}	BudgetResponse
// @Failure		401				{object}	BudgetResponse
// @Failure		409				{object}	BudgetResponse
// @Failure		500				{object}	BudgetResponse
// @Param			budget			body		BudgetEditable	true	"Budget"
// @Param			carryForward	query		bool			false	"Inherit from the previous month or template. Defaults to true."
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	opts := budget.CreateOptions{}
	if c.Query("carryForward") != "false" {
		opts = budget.CreateOptions{
			InheritIncome:      !slices.Contains(fields, "Income"),
			InheritPercentages: !slices.Contains(fields, "NeedsPercentage") && !slices.Contains(fields, "WantsPercentage") && !slices.Contains(fields, "SavingsPercentage"),
			InheritItems:       !slices.Contains(fields, "NeedsItems") && !slices.Contains(fields, "WantsItems") && !slices.Contains(fields, "SavingsItems"),
		}
	}

	b, err := co.Service.CreateBudget(c.Request.Context(), identity(c), editable.model(), opts)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, b)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns a list of the budgets of the caller, newest month first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		401	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			year	query	int		false	"Filter by year"
// @Param			month	query	int		false	"Filter by month"
// @Param			offset	query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we're filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	budgets, total, err := co.Service.ListBudgets(c.Request.Context(), identity(c), store.BudgetFilter{
		Year:   filter.Year,
		Month:  filter.Month,
		Offset: int(filter.Offset),
		Limit:  limit,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Delete budgets of a year
// @Description	Deletes all budgets of the caller in a year and returns how many were deleted
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetDeleteResponse
// @Failure		400		{object}	BudgetDeleteResponse
// @Failure		401		{object}	BudgetDeleteResponse
// @Failure		500		{object}	BudgetDeleteResponse
// @Param			year	query		int	true	"The year to delete budgets for"
// @Router			/v1/budgets [delete]
func (co Controller) DeleteBudgetsForYear(c *gin.Context) {
	var params struct {
		Year int `form:"year" binding:"required,min=1900,max=9999"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		s := errYearParameter.Error()
		c.JSON(http.StatusBadRequest, BudgetDeleteResponse{
			Error: &s,
		})
		return
	}

	count, err := co.Service.DeleteBudgetsForYear(c.Request.Context(), identity(c), params.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetDeleteResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetDeleteResponse{
		Data: &BudgetDeleteCount{
			Year:    params.Year,
			Deleted: count,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		401	{object}	BudgetResponse
// @Failure		403	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	b, err := co.Service.GetBudget(c.Request.Context(), identity(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, b)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Replace budget
// @Description	Replaces all editable fields of an existing budget. Fields missing in the request are reset to their zero value.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		401		{object}	BudgetResponse
// @Failure		403		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		409		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [put]
func (co Controller) ReplaceBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	b, err := co.Service.ReplaceBudget(c.Request.Context(), identity(c), id, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, b)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Service.DeleteBudget(c.Request.Context(), identity(c), id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Rebalance budget
// @Description	Sets the percentage of one category and distributes the rest proportionally to the other two
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		401			{object}	BudgetResponse
// @Failure		403			{object}	BudgetResponse
// @Failure		404			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rebalance	body		RebalanceEditable	true	"Category and new value"
// @Router			/v1/budgets/{id}/rebalance [post]
func (co Controller) RebalanceBudget(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var editable RebalanceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	category, err := types.ParseCategory(editable.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	b, err := co.Service.RebalanceBudget(c.Request.Context(), identity(c), id, category, *editable.Value)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := newBudget(c, b)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
