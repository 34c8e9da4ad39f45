// Package v1 implements the v1 HTTP API.
package v1

import (
	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Service  *budget.Service
	Currency currency.Preference
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", co.Get)
		r.DELETE("", co.Cleanup)
		r.OPTIONS("", co.Options)
	}

	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterTemplateRoutes(r.Group("/templates"))
	co.RegisterOverviewRoutes(r.Group("/overview"))
	co.RegisterCalculatorRoutes(r)
	co.RegisterCurrencyRoutes(r.Group("/currencies"))
}

// identity returns the identity the authentication middleware stored in the context.
// Requests without one get the empty identity, which every operation rejects.
func identity(c *gin.Context) authz.Identity {
	v, ok := c.Get(string(models.DBContextIdentity))
	if !ok {
		return authz.Identity{}
	}

	id, _ := v.(authz.Identity)
	return id
}
