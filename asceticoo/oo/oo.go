// Package oo holds small composition helpers: shallow map merging and
// binding a function to a fixed context value.
//
// There is no inheritance helper. Embed the parent struct and call the
// embedded method explicitly to decorate it.
package oo

const Version = "0.1.0"

// Extend copies every entry of guest into host, overwriting existing keys,
// and returns host. A nil host is allocated.
func Extend[M ~map[K]V, K comparable, V any](host M, guest M) M {
	if host == nil {
		host = make(M, len(guest))
	}
	for k, v := range guest {
		host[k] = v
	}
	return host
}

// Bind fixes the context argument of fn. The returned function always calls
// fn with ctx, whatever receiver the caller has at hand.
func Bind[C, A, R any](ctx C, fn func(C, A) R) func(A) R {
	return func(arg A) R {
		return fn(ctx, arg)
	}
}

// BindVariadic is Bind for functions taking any number of arguments.
func BindVariadic[C, A, R any](ctx C, fn func(C, ...A) R) func(...A) R {
	return func(args ...A) R {
		return fn(ctx, args...)
	}
}
