package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTemplatesCreate() {
	tpl := createTestTemplate(suite.T(), alice, v1.TemplateEditable{
		TemplateName: "Standard",
		NeedsItems:   []models.BudgetItem{{Name: "Rent", Amount: decimal.NewFromInt(1200)}},
	})
	require.NotNil(suite.T(), tpl.Data)

	assert.Equal(suite.T(), alice, tpl.Data.OwnerID)
	assert.Equal(suite.T(), "Standard", tpl.Data.TemplateName)
	assert.Equal(suite.T(), [3]int{50, 30, 20}, [3]int{tpl.Data.NeedsPercentage, tpl.Data.WantsPercentage, tpl.Data.SavingsPercentage})
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/templates/%s/duplicate", tpl.Data.ID), tpl.Data.Links.Duplicate)
}

func (suite *TestSuiteStandard) TestTemplatesCreateInvalid() {
	tests := []struct {
		name    string
		subject string
		body    any
		status  int
	}{
		{"Empty name", alice, v1.TemplateEditable{}, http.StatusBadRequest},
		{"Percentage sum", alice, v1.TemplateEditable{TemplateName: "Odd", NeedsPercentage: 40, WantsPercentage: 40, SavingsPercentage: 10}, http.StatusBadRequest},
		{"Broken JSON", alice, `{"templateName": `, http.StatusBadRequest},
		{"Unauthenticated", "", v1.TemplateEditable{TemplateName: "Nobody"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := []map[string]string{}
			if tt.subject != "" {
				headers = append(headers, test.Token(t, tt.subject))
			}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/templates", tt.body, headers...)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTemplatesList() {
	_ = createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Lean months"})
	_ = createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Lean summer"})
	_ = createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Holidays"})
	_ = createTestTemplate(suite.T(), bob, v1.TemplateEditable{TemplateName: "Lean"})

	tests := []struct {
		name  string
		count int
	}{
		{"", 3},
		{"Lean*", 2},
		{"Holidays", 1},
		{"*summer", 1},
		{"Nothing", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/templates?name=%s", url.QueryEscape(tt.name)), "", test.Token(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TemplateListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)

			for _, tpl := range response.Data {
				assert.Equal(t, alice, tpl.OwnerID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTemplatesGet() {
	tpl := createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Mine"})

	tests := []struct {
		name    string
		subject string
		url     string
		status  int
	}{
		{"Owner", alice, tpl.Data.Links.Self, http.StatusOK},
		{"Other user", bob, tpl.Data.Links.Self, http.StatusForbidden},
		{"Not found", alice, fmt.Sprintf("http://example.com/v1/templates/%s", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", alice, "http://example.com/v1/templates/nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", test.Token(t, tt.subject))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTemplatesReplace() {
	tpl := createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Before"})

	editable := tpl.Data.TemplateEditable
	editable.TemplateName = "After"
	editable.NeedsPercentage = 60
	editable.WantsPercentage = 20

	r := test.Request(suite.T(), http.MethodPut, tpl.Data.Links.Self, editable, test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "After", updated.Data.TemplateName)
	assert.Equal(suite.T(), 60, updated.Data.NeedsPercentage)

	r = test.Request(suite.T(), http.MethodPut, tpl.Data.Links.Self, editable, test.Token(suite.T(), bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestTemplatesDuplicate() {
	tpl := createTestTemplate(suite.T(), alice, v1.TemplateEditable{
		TemplateName:      "Base",
		NeedsPercentage:   55,
		WantsPercentage:   25,
		SavingsPercentage: 20,
		WantsItems:        []models.BudgetItem{{Name: "Cinema", Amount: decimal.NewFromInt(30)}},
	})

	r := test.Request(suite.T(), http.MethodPost, tpl.Data.Links.Duplicate, "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var duplicate v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &duplicate)
	assert.NotEqual(suite.T(), tpl.Data.ID, duplicate.Data.ID)
	assert.Equal(suite.T(), "Base (Copy)", duplicate.Data.TemplateName)
	assert.Equal(suite.T(), 55, duplicate.Data.NeedsPercentage)
	assert.Equal(suite.T(), []string{"Cinema"}, names(duplicate.Data.WantsItems))

	r = test.Request(suite.T(), http.MethodPost, tpl.Data.Links.Duplicate, "", test.Token(suite.T(), bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestTemplatesDeleteKeepsBudgets() {
	tpl := createTestTemplate(suite.T(), alice, v1.TemplateEditable{TemplateName: "Gone soon"})
	b := createTestBudget(suite.T(), alice, map[string]any{"year": 2025, "month": 6, "templateId": tpl.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, tpl.Data.Links.Self, "", test.Token(suite.T(), bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, tpl.Data.Links.Self, "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tpl.Data.Links.Self, "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, b.Data.Links.Self, "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	require.NotNil(suite.T(), budget.Data.TemplateID)
	assert.Equal(suite.T(), tpl.Data.ID, *budget.Data.TemplateID)
}
