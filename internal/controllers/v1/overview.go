package v1

import (
	"net/http"

	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterOverviewRoutes registers the routes for yearly overviews with
// the RouterGroup that is passed.
func (co Controller) RegisterOverviewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", co.OptionsOverview)
	r.GET("/:year", co.GetOverview)
}

// OverviewFormatted holds the totals of an overview formatted for display.
type OverviewFormatted struct {
	Income  string `json:"income" example:"E£48,000.00"`
	Needs   string `json:"needs" example:"E£24,000.00"`
	Wants   string `json:"wants" example:"E£14,400.00"`
	Savings string `json:"savings" example:"E£9,600.00"`
	Spent   string `json:"spent" example:"E£48,000.00"`
	Net     string `json:"net" example:"E£0.00"`
}

type Overview struct {
	budget.Overview
	Currency  currency.Currency `json:"currency"`  // Currency the formatted values use
	Formatted OverviewFormatted `json:"formatted"` // Totals formatted in the currency
}

type OverviewResponse struct {
	Data  *Overview `json:"data"`                                                           // Data for the overview
	Error *string   `json:"error" example:"the year parameter must be set to a valid year"` // The error, if any occurred
}

type OverviewQueryFilter struct {
	Currency string `form:"currency" example:"USD"` // ISO 4217 code of the currency to format values in
}

func newOverview(o budget.Overview, cur currency.Currency) Overview {
	return Overview{
		Overview: o,
		Currency: cur,
		Formatted: OverviewFormatted{
			Income:  cur.Format(o.Income),
			Needs:   cur.Format(o.Needs),
			Wants:   cur.Format(o.Wants),
			Savings: cur.Format(o.Savings),
			Spent:   cur.Format(o.Spent),
			Net:     cur.Format(o.Net),
		},
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overview
// @Success		204
// @Param			year	path	int	true	"The year"
// @Router			/v1/overview/{year} [options]
func (co Controller) OptionsOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Yearly overview
// @Description	Returns totals, monthly values, average category shares and recommendations for all budgets of a year
// @Tags			Overview
// @Produce		json
// @Success		200			{object}	OverviewResponse
// @Failure		400			{object}	OverviewResponse
// @Failure		401			{object}	OverviewResponse
// @Failure		500			{object}	OverviewResponse
// @Param			year		path		int		true	"The year"
// @Param			currency	query		string	false	"Currency to format values in, defaults to the configured currency"
// @Router			/v1/overview/{year} [get]
func (co Controller) GetOverview(c *gin.Context) {
	var uri URIYear
	if err := c.ShouldBindUri(&uri); err != nil {
		s := errYearParameter.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{
			Error: &s,
		})
		return
	}

	var filter OverviewQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	cur, err := co.Currency.Resolve(filter.Currency)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{
			Error: &s,
		})
		return
	}

	o, err := co.Service.Overview(c.Request.Context(), identity(c), uri.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{
			Error: &s,
		})
		return
	}

	data := newOverview(o, cur)
	c.JSON(http.StatusOK, OverviewResponse{Data: &data})
}
