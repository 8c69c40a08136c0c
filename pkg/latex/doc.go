// Package latex turns canonical number strings into LaTeX math markup. It
// rewrites scientific notation as `m \cdot 10^{n}` and factors a common
// power of ten out of a value/error pair so both share one exponential.
package latex
