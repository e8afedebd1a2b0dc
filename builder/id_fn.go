package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal ("0", "1", ...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns an IDFn producing prefix+idx ("v0", "v1", ...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
