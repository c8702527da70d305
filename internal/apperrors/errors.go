package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that authentication failed or is missing.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateUnavailable indicates that an exchange rate for the requested
// currency pair could not be resolved, either because the remote provider
// reported a failure or because its response lacked the target currency.
var ErrRateUnavailable = errors.New("exchange rate unavailable")
