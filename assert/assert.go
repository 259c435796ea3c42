package assert

import "github.com/oomph-ac/footing/oerror"

// IsTrue panics with the formatted message if ok is false. It guards against programming errors only,
// never against conditions a caller can trigger at runtime.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Positive panics if v is not strictly greater than zero.
func Positive(v float32, what string) {
	IsTrue(v > 0, "%s must be positive, got %v", what, v)
}
