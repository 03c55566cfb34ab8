// Package unit provides the zero-information Unit type returned by
// combinators that exist only for their side effects.
package unit

// Unit has exactly one value. All Units are equal.
type Unit struct{}

// Value is the Unit value.
var Value = Unit{}

// Equal always returns true.
func (Unit) Equal(Unit) bool { return true }

// Hash returns the fixed hash of Unit.
func (Unit) Hash() uint64 { return 0 }

// String renders Unit as "()".
func (Unit) String() string { return "()" }

// Compare always returns 0.
func (Unit) Compare(Unit) int { return 0 }
