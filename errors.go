package kexp

import "errors"

// InvalidArgErr is returned for arguments outside an operation's domain:
// grids with fewer than two points, horizons that are not positive finite
// values, unknown quadrature rules, and lambda bases outside their range.
var InvalidArgErr = errors.New("invalid argument")

// ShapeMismatchErr is returned when paired sequences disagree in length,
// e.g. a batch kernel result shorter than its lag set or a distributed
// order kernel with different alpha and weight counts.
var ShapeMismatchErr = errors.New("shape mismatch")
