// SPDX-License-Identifier: MIT

// Package tdaerr holds the error taxonomy shared by every lvtda engine.
//
// Three kinds exist and every error returned by the engines matches exactly
// one of them under errors.Is:
//
//   - ErrShape            – malformed or inconsistent point data (unrecoverable).
//   - ErrInvalidParameter – a parameter outside its documented domain.
//   - ErrResourceExceeded – a configured work budget was hit; the caller may
//     retry with a smaller max dimension or radius.
//
// Packages declare their own prefixed sentinels ("dbscan: ...") built with
// Kind, so a caller can match either the precise sentinel or the kind.
package tdaerr

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an empty, ragged or non-finite point cloud.
	ErrShape = errors.New("tda: shape error")

	// ErrInvalidParameter indicates a negative radius, a non-positive count,
	// an out-of-range overlap or a similar caller mistake.
	ErrInvalidParameter = errors.New("tda: invalid parameter")

	// ErrResourceExceeded indicates the filtration outgrew its simplex budget.
	ErrResourceExceeded = errors.New("tda: resource exceeded")
)

// kindError is a package sentinel that also reports its taxonomy kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

// Unwrap exposes the taxonomy kind to errors.Is / errors.As.
func (e *kindError) Unwrap() error { return e.kind }

// Kind returns a new sentinel with message msg that matches kind under errors.Is.
// Complexity: O(1).
func Kind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Errorf wraps err with the operation tag op, mirroring fmt.Errorf("op: %w").
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
