package worksheet

import "fmt"

// Kind identifies which variant of a cell [Value] is populated.
type Kind uint8

const (
	// KindEmpty marks a cell with no content. It is the zero value, so a
	// freshly allocated grid consists of empty cells.
	KindEmpty Kind = iota
	// KindShared marks a reference into the document's shared string table.
	KindShared
	// KindLiteral marks a string stored directly in the cell.
	KindLiteral
	// KindInt marks a signed 64-bit integer.
	KindInt
	// KindFloat marks a double-precision float.
	KindFloat
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindShared:
		return "shared"
	case KindLiteral:
		return "literal"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a single typed cell value. Exactly one payload field is
// meaningful, selected by Kind.
type Value struct {
	// Kind selects the populated variant.
	Kind Kind
	// Ref is the shared-string-table index when Kind is KindShared.
	Ref int
	// Str holds the literal text when Kind is KindLiteral.
	Str string
	// Int holds the value when Kind is KindInt.
	Int int64
	// Float holds the value when Kind is KindFloat.
	Float float64
}

// Cell pairs a value with its grid coordinates.
type Cell struct {
	// R is the 0-based row index of the cell.
	R int
	// C is the 0-based column index of the cell.
	C int
	// V is the cell's value.
	V Value
}
