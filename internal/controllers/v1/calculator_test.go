package v1_test

import (
	"net/http"
	"testing"

	"github.com/budget-rule/backend/internal/allocation"
	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/types"
	"github.com/budget-rule/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCalculatorRebalance() {
	tests := []struct {
		name   string
		body   any
		status int
		want   allocation.Percentages
	}{
		{"Needs to 60", map[string]any{"needsPercentage": 50, "wantsPercentage": 30, "savingsPercentage": 20, "category": "needs", "value": 60}, http.StatusOK, allocation.Percentages{Needs: 60, Wants: 24, Savings: 16}},
		{"Wants to 100", map[string]any{"needsPercentage": 50, "wantsPercentage": 30, "savingsPercentage": 20, "category": "wants", "value": 100}, http.StatusOK, allocation.Percentages{Needs: 0, Wants: 100, Savings: 0}},
		{"Others zero", map[string]any{"needsPercentage": 100, "category": "needs", "value": 40}, http.StatusOK, allocation.Percentages{Needs: 40, Wants: 30, Savings: 30}},
		{"Odd rest", map[string]any{"needsPercentage": 100, "category": "needs", "value": 41}, http.StatusOK, allocation.Percentages{Needs: 41, Wants: 30, Savings: 29}},
		{"Value too high", map[string]any{"category": "savings", "value": 101}, http.StatusBadRequest, allocation.Percentages{}},
		{"Value negative", map[string]any{"category": "savings", "value": -5}, http.StatusBadRequest, allocation.Percentages{}},
		{"No category", map[string]any{"value": 10}, http.StatusBadRequest, allocation.Percentages{}},
		{"Unknown category", map[string]any{"category": "luxury", "value": 10}, http.StatusBadRequest, allocation.Percentages{}},
		{"Empty body", "", http.StatusBadRequest, allocation.Percentages{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/rebalance", tt.body, test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.RebalanceResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, tt.want, *response.Data)
			assert.Equal(t, 100, response.Data.Sum())
		})
	}
}

func (suite *TestSuiteStandard) TestCalculatorCarryForward() {
	items := []models.BudgetItem{
		{Name: "Rent", Amount: decimal.NewFromInt(1000), IsRecurring: true, Frequency: types.FrequencyMonthly},
		{Name: "Phone", Amount: decimal.NewFromInt(20), IsRecurring: true},
		{Name: "Water", Amount: decimal.NewFromInt(60), IsRecurring: true, Frequency: types.FrequencyQuarterly},
		{Name: "Tax", Amount: decimal.NewFromInt(300), IsRecurring: true, Frequency: types.FrequencyYearly},
		{Name: "Sofa", Amount: decimal.NewFromInt(700)},
	}

	tests := []struct {
		name   string
		source int
		target int
		want   []string
	}{
		{"Next month", 1, 2, []string{"Rent", "Phone"}},
		{"One quarter", 1, 4, []string{"Rent", "Phone", "Water"}},
		{"Same month", 5, 5, []string{"Rent", "Phone", "Water"}},
		{"Backwards quarter", 7, 4, []string{"Rent", "Phone", "Water"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/carry-forward", v1.CarryForwardRequest{
				SourceMonth: tt.source,
				TargetMonth: tt.target,
				NeedsItems:  items,
			}, test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CarryForwardResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.want, names(response.Data.NeedsItems))
			assert.Equal(t, []string{}, names(response.Data.WantsItems))
		})
	}
}

func (suite *TestSuiteStandard) TestCalculatorCarryForwardInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Month 13", map[string]any{"sourceMonth": 1, "targetMonth": 13}},
		{"Missing source", map[string]any{"targetMonth": 2}},
		{"Item without name", map[string]any{"sourceMonth": 1, "targetMonth": 2, "wantsItems": []map[string]any{{"amount": "5", "isRecurring": true}}}},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/carry-forward", tt.body, test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCalculatorsUnauthenticated() {
	for _, path := range []string{"rebalance", "carry-forward"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/"+path, "{}")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}
