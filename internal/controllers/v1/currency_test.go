package v1_test

import (
	"net/http"

	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCurrencies() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/currencies", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CurrencyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "EGP", response.Data.Default.Code)
	assert.Equal(suite.T(), "E£", response.Data.Default.Symbol)
	assert.Equal(suite.T(), currency.Supported, response.Data.Supported)
}

func (suite *TestSuiteStandard) TestCurrenciesConfiguredDefault() {
	suite.T().Setenv("DEFAULT_CURRENCY", "GBP")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/currencies", "", test.Token(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CurrencyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "GBP", response.Data.Default.Code)
}
