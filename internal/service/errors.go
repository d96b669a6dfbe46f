// Package service provides business logic for the application: account
// registration and authentication, and the authorization policy gating
// every URL operation.
package service

import "errors"

// Service errors. Handlers map these to HTTP status codes; none are
// retryable and none are fatal to the process.
var (
	// ErrValidation indicates malformed or missing input, such as an
	// empty email, password, or long URL.
	ErrValidation = errors.New("invalid input")

	// ErrEmailTaken indicates a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password. The two cases are deliberately indistinguishable so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated indicates the request carried no session identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates an authenticated requester who does not own
	// the record.
	ErrForbidden = errors.New("not the owner of this url")

	// ErrURLNotFound indicates no record exists for the short code.
	ErrURLNotFound = errors.New("url not found")
)
