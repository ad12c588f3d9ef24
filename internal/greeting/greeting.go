// Package greeting builds greeting messages.
package greeting

const (
	prefix = "Hello,"
	suffix = "!"
)

// Greet returns the greeting for name. The name is used verbatim.
func Greet(name string) string {
	return prefix + name + suffix
}
