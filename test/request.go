package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/budget"
	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/router"
	"github.com/budget-rule/backend/internal/store/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Secret is the token secret used when AUTH_JWT_SECRET is not set.
const Secret = "budget-rule-test-secret"

// Verifier returns the verifier that Request uses for bearer tokens.
func Verifier() authz.Verifier {
	secret, ok := os.LookupEnv("AUTH_JWT_SECRET")
	if !ok {
		secret = Secret
	}

	return authz.Verifier{
		Secret: []byte(secret),
		Issuer: os.Getenv("AUTH_JWT_ISSUER"),
	}
}

// Token returns a bearer token header for subject.
func Token(t *testing.T, subject string) map[string]string {
	token, err := Verifier().Sign(subject, time.Hour)
	if err != nil {
		assert.FailNow(t, "Token could not be signed", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// It uses the database that models.DB is connected to.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteStr []byte
	var err error

	// If the body is a string, convert it to bytes
	if body == nil {
		byteStr = []byte{}
	} else if reflect.TypeOf(body).Kind() == reflect.String {
		byteStr = []byte(body.(string))
	} else {
		byteStr, err = json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from object input", err)
		}
	}

	baseURL, err := url.Parse(os.Getenv("API_URL"))
	require.Nil(t, err, "API_URL could not be parsed")

	r, teardown, err := router.Config(baseURL)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	defer teardown()

	pref, err := currency.NewPreference(os.Getenv("DEFAULT_CURRENCY"))
	require.Nil(t, err, "DEFAULT_CURRENCY is not supported")

	co := v1.Controller{
		Service:  budget.NewService(sqlstore.New(models.DB)),
		Currency: pref,
	}
	router.AttachRoutes(co, Verifier(), r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, bytes.NewBuffer(byteStr))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus verifies that the response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}
