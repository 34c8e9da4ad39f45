// Package currency resolves the display currency for amounts.
//
// Amounts are stored without a currency. The currency is a display
// preference only, amounts are never converted.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCode is used when no preference is configured.
const DefaultCode = "EGP"

var ErrUnsupported = errors.New("this currency is not supported")

type Currency struct {
	Code   string `json:"code" example:"EGP"`            // ISO 4217 code
	Symbol string `json:"symbol" example:"E£"`           // Symbol shown in front of amounts
	Name   string `json:"name" example:"Egyptian Pound"` // Display name
}

// Supported lists all currencies in display order.
var Supported = []Currency{
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "SAR", Symbol: "SR", Name: "Saudi Riyal"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
}

// Lookup returns the supported currency for an ISO 4217 code. The code
// is case insensitive.
func Lookup(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnsupported, code)
	}

	for _, c := range Supported {
		if c.Code == unit.String() {
			return c, nil
		}
	}

	return Currency{}, fmt.Errorf("%w: %s", ErrUnsupported, unit)
}

var printer = message.NewPrinter(language.English)

// Format renders the amount with the currency symbol, two fraction digits
// and thousands separators, e.g. "E£1,234.50".
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// Preference holds the configured default currency.
type Preference struct {
	Default Currency
}

// NewPreference returns a Preference with code as default. An empty code
// selects DefaultCode.
func NewPreference(code string) (Preference, error) {
	if code == "" {
		code = DefaultCode
	}

	c, err := Lookup(code)
	if err != nil {
		return Preference{}, err
	}

	return Preference{Default: c}, nil
}

// Resolve returns the currency for code, or the default currency when code is empty.
func (p Preference) Resolve(code string) (Currency, error) {
	if code == "" {
		return p.Default, nil
	}

	return Lookup(code)
}
