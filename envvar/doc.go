// Package envvar recognizes django-configurations value declarations in a
// parsed settings module and renders them as a dotenv template.
//
// [Recognize] walks a [syntax.Tree] looking for calls to the value
// constructors listed by [Kinds] (Value, BooleanValue, ListValue, ...),
// whether called bare or through an attribute such as values.ListValue. Each
// call becomes a [Descriptor] that records the environment variable name,
// its prefix, the default argument and the kind's extra parameters. A call
// without an explicit environ_name takes the name of the assignment target
// it is bound to:
//
//	SECRET_KEY = values.SecretValue()
//
// yields
//
//	# DJANGO_SECRET_KEY: Secret
//	export DJANGO_SECRET_KEY=
//
// Variable references used for environ_name, environ_prefix or a default are
// followed by a [Resolver], which searches the whole module without regard
// to scope and stops after a bounded number of name-to-name links.
//
// Defaults are rendered by kind: sequences are joined with their separator,
// nested sequences additionally with seq_separator, and anything that is not
// a literal is printed as normalized source.
package envvar
