package syntax

//go:generate go tool stringer --type Kind --output kind_string.go

// Kind tags the variant of a [Node].
type Kind int

// Node kinds.
const (
	Other Kind = iota
	Module
	Assignment
	Call
	Keyword
	Name
	Attribute
	String
	Number
	Boolean
	None
	List
	Tuple
	Set
)

// IsLiteral reports whether k is a scalar literal kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case String, Number, Boolean, None:
		return true
	default:
		return false
	}
}

// IsSequence reports whether k is a list, tuple or set display.
func (k Kind) IsSequence() bool {
	switch k {
	case List, Tuple, Set:
		return true
	default:
		return false
	}
}
