package v1

import (
	"net/http"

	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterCurrencyRoutes registers the routes for currencies with
// the RouterGroup that is passed.
func (co Controller) RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCurrencies)
	r.GET("", co.GetCurrencies)
}

type Currencies struct {
	Default   currency.Currency   `json:"default"`   // Currency used when none is requested
	Supported []currency.Currency `json:"supported"` // All currencies values can be formatted in
}

type CurrencyResponse struct {
	Data *Currencies `json:"data"` // Currency information
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Router			/v1/currencies [options]
func (co Controller) OptionsCurrencies(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Currencies
// @Description	Returns the default and all supported currencies
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyResponse
// @Router			/v1/currencies [get]
func (co Controller) GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyResponse{Data: &Currencies{
		Default:   co.Currency.Default,
		Supported: currency.Supported,
	}})
}
