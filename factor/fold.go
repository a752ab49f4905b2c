// SPDX-License-Identifier: MIT

package factor

// Fold reduces xs left-to-right with op: op(op(op(xs[0], xs[1]), xs[2]), ...).
// The sequence must be non-empty (ErrNoFactors). The first error stops the fold.
// A single element is returned as is; callers that need a distinct instance
// must copy it themselves.
func Fold[T any](xs []T, op func(acc, next T) (T, error)) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrNoFactors
	}

	acc := xs[0]
	var err error
	for i := 1; i < len(xs); i++ {
		if acc, err = op(acc, xs[i]); err != nil {
			return zero, err
		}
	}

	return acc, nil
}
