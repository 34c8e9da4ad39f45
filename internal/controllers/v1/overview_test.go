package v1_test

import (
	"net/http"
	"testing"

	"github.com/budget-rule/backend/internal/budget"
	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func spending(month int, income, needs, wants, savings int64) map[string]any {
	return map[string]any{
		"year":         2025,
		"month":        month,
		"income":       decimal.NewFromInt(income),
		"needsItems":   []models.BudgetItem{{Name: "Needs", Amount: decimal.NewFromInt(needs)}},
		"wantsItems":   []models.BudgetItem{{Name: "Wants", Amount: decimal.NewFromInt(wants)}},
		"savingsItems": []models.BudgetItem{{Name: "Savings", Amount: decimal.NewFromInt(savings)}},
	}
}

func (suite *TestSuiteStandard) TestOverview() {
	_ = createTestBudget(suite.T(), alice, spending(1, 3000, 1800, 900, 300))
	_ = createTestBudget(suite.T(), alice, spending(2, 3000, 1800, 900, 400))
	_ = createTestBudget(suite.T(), bob, spending(1, 9000, 1, 1, 1))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/overview/2025", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	o := response.Data

	assert.Equal(suite.T(), 2, o.Budgets)
	assert.True(suite.T(), decimal.NewFromInt(6000).Equal(o.Income), "Income is %s", o.Income)
	assert.True(suite.T(), decimal.NewFromInt(6100).Equal(o.Spent), "Spent is %s", o.Spent)
	assert.True(suite.T(), decimal.NewFromInt(-100).Equal(o.Net), "Net is %s", o.Net)
	assert.Len(suite.T(), o.Months, 12)
	assert.True(suite.T(), o.Months[1].HasBudget)
	assert.False(suite.T(), o.Months[2].HasBudget)

	assert.Equal(suite.T(), "EGP", o.Currency.Code)
	assert.Equal(suite.T(), "E£6,000.00", o.Formatted.Income)
	assert.Equal(suite.T(), "E£-100.00", o.Formatted.Net)

	codes := []string{}
	for _, rec := range o.Recommendations {
		codes = append(codes, rec.Code)
	}
	assert.Equal(suite.T(), []string{budget.RecommendationSavingsLow}, codes)
}

func (suite *TestSuiteStandard) TestOverviewCurrency() {
	_ = createTestBudget(suite.T(), alice, spending(1, 2500, 1250, 750, 500))

	tests := []struct {
		query  string
		status int
		income string
	}{
		{"", http.StatusOK, "E£2,500.00"},
		{"?currency=USD", http.StatusOK, "$2,500.00"},
		{"?currency=eur", http.StatusOK, "€2,500.00"},
		{"?currency=JPY", http.StatusBadRequest, ""},
		{"?currency=dollars", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/overview/2025"+tt.query, "", test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.OverviewResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, tt.income, response.Data.Formatted.Income)
		})
	}
}

func (suite *TestSuiteStandard) TestOverviewEmptyYear() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/overview/2030", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 0, response.Data.Budgets)
	assert.Empty(suite.T(), response.Data.Recommendations)
	assert.Equal(suite.T(), "E£0.00", response.Data.Formatted.Spent)
}

func (suite *TestSuiteStandard) TestOverviewInvalidYear() {
	for _, year := range []string{"abc", "0", "12", "10000"} {
		suite.T().Run(year, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/overview/"+year, "", test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestOverviewUnauthenticated() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/overview/2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
