package envvar

//go:generate go tool stringer --type Kind --output kind_string.go

// Kind is the semantic type of a setting. The set is closed: each kind
// corresponds to exactly one django-configurations value constructor.
type Kind int

// Setting kinds. The String form of each is its type label.
const (
	String Kind = iota
	Boolean
	Integer
	PositiveInteger
	Float
	Decimal
	List
	Tuple
	SingleNestedList
	SingleNestedTuple
	Set
	Dict
	Email
	URL
	IP
	Regex
	Path
	DatabaseURL
	CacheURL
	EmailURL
	SearchURL
	Backends
	Secret
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{
	String, Boolean, Integer, PositiveInteger, Float, Decimal,
	List, Tuple, SingleNestedList, SingleNestedTuple, Set, Dict,
	Email, URL, IP, Regex, Path,
	DatabaseURL, CacheURL, EmailURL, SearchURL, Backends, Secret,
}

// catalog maps constructor names to kinds.
var catalog = func() map[string]Kind {
	m := make(map[string]Kind, len(Kinds))
	for _, k := range Kinds {
		m[k.Constructor()] = k
	}

	return m
}()

// Constructor returns the name of the value class that declares k.
func (k Kind) Constructor() string {
	if k == String {
		return "Value"
	}

	return k.String() + "Value"
}

// Lookup returns the kind declared by the named constructor.
func Lookup(constructor string) (Kind, bool) {
	k, ok := catalog[constructor]

	return k, ok
}

// variant returns the rendering family of k.
func (k Kind) variant() variant {
	switch k {
	case List, Backends:
		return sequence{empty: "[]"}
	case Tuple:
		return sequence{empty: "()"}
	case Set:
		return sequence{empty: "{}"}
	case SingleNestedList:
		return nested{sequence{empty: "[]"}}
	case SingleNestedTuple:
		return nested{sequence{empty: "()"}}
	case Regex:
		return regex{}
	case Path:
		return path{}
	default:
		return scalar{}
	}
}
