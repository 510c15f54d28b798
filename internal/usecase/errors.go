package usecase

import "errors"

// Service-level sentinel errors. Storage-shaped failures (not found,
// duplicate name, seat taken, dangling reference) live in the repository
// package; these arise in the service layer itself.

// ErrMissingParameter is returned when a filter request supplies none of
// its parameters. Guards against a filter degenerating into a full scan.
var ErrMissingParameter = errors.New("minimum one parameter required")

// ErrAuthenticationFailed is returned on login with unknown identity or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrAuthenticationFailed = errors.New("authentication failed")

// ErrDuplicateAdmin is returned when admin provisioning collides on email
// or username. Kept apart from the generic name collision so the caller
// sees which identity field class conflicted.
var ErrDuplicateAdmin = errors.New("email or username already exists")
