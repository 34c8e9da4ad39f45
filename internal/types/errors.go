package types

import "errors"

var ErrUnknownCategory = errors.New("category must be one of needs, wants, savings")
