// Package matcher compiles a symbolized SpRE into a Go regular expression,
// evaluates the spatial monitor per frame to build the symbol string a
// frame sequence denotes, and drives the offline and online search loops
// over it.
package matcher

// Match is a half-open frame interval [Start, End) produced by a search.
type Match struct {
	Start int
	End   int
}
