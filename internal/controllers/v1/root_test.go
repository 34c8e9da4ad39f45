package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), v1.Links{
		Budgets:      "http://example.com/v1/budgets",
		Templates:    "http://example.com/v1/templates",
		Overview:     "http://example.com/v1/overview/YYYY",
		Rebalance:    "http://example.com/v1/rebalance",
		CarryForward: "http://example.com/v1/carry-forward",
		Currencies:   "http://example.com/v1/currencies",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestBudget(suite.T(), alice, january())
	_ = createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Delete me"})
	_ = createTestBudget(suite.T(), bob, january())

	tests := []string{
		"http://example.com/v1/budgets",
		"http://example.com/v1/templates",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "", test.Token(t, alice))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}

	// Other users keep their data
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "", test.Token(suite.T(), bob))
	var bobs v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &bobs)
	assert.Len(suite.T(), bobs.Data, 1)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
		{"No confirmation", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "", test.Token(t, alice))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupUnauthenticated() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
