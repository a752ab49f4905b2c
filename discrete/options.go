// SPDX-License-Identifier: MIT

package discrete

// Option configures New.
type Option func(*options)

type options struct {
	stateNames map[string][]string
}

// WithStateNames labels the states of some or all variables. Entries for
// variables outside the scope are ignored; variables without an entry get
// the labels "0", "1", ... The map and its lists are copied.
func WithStateNames(names map[string][]string) Option {
	return func(o *options) {
		if o.stateNames == nil {
			o.stateNames = make(map[string][]string, len(names))
		}
		for v, labels := range names {
			o.stateNames[v] = append([]string(nil), labels...)
		}
	}
}
