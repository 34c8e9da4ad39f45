package v1

import (
	"net/http"

	"github.com/budget-rule/backend/internal/httputil"
	"github.com/budget-rule/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`            // URL of Budget collection endpoint
	Templates    string `json:"templates" example:"https://example.com/api/v1/templates"`        // URL of Template collection endpoint
	Overview     string `json:"overview" example:"https://example.com/api/v1/overview/YYYY"`     // This uses 'YYYY' for clients to replace with the actual year.
	Rebalance    string `json:"rebalance" example:"https://example.com/api/v1/rebalance"`        // URL of the rebalance calculator
	CarryForward string `json:"carryForward" example:"https://example.com/api/v1/carry-forward"` // URL of the carry-forward preview
	Currencies   string `json:"currencies" example:"https://example.com/api/v1/currencies"`      // URL of the supported currencies
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:      url + "/v1/budgets",
			Templates:    url + "/v1/templates",
			Overview:     url + "/v1/overview/YYYY",
			Rebalance:    url + "/v1/rebalance",
			CarryForward: url + "/v1/carry-forward",
			Currencies:   url + "/v1/currencies",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all budgets and templates of the caller
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = co.Service.DeleteEverything(c.Request.Context(), identity(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
