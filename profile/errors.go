// SPDX-License-Identifier: MIT
// Package: lvlens/profile
//
// errors.go — sentinel errors for profile evaluation.

package profile

import (
	"errors"
	"fmt"
)

// ErrUnsupportedParameterization indicates a profile parameterization tag
// with no kernel behind it.
var ErrUnsupportedParameterization = errors.New("profile: unsupported profile parameterization")

// unsupported builds the configuration error for op and the offending tag.
func unsupported(op string, p Parameterization) error {
	return fmt.Errorf("%s: parameterization %q: %w", op, string(p), ErrUnsupportedParameterization)
}
