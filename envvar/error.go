package envvar

import "github.com/ardnew/gendotenv/pkg"

// Predefined errors (sentinel values).
var (
	ErrMalformedDeclaration  = pkg.NewError("malformed declaration")
	ErrUnresolvableReference = pkg.NewError("unresolvable reference")
	ErrFilter                = pkg.NewError("invalid filter expression")
)
