// Package table assembles LaTeX table environments from columnar
// measurement data. Columns carrying uncertainties are rounded with
// sigfig.RoundWithError, converted with the latex package and, when both value
// and error are exponential, merged into one `( v \pm e) \cdot 10^{n}`
// fragment. Documents use the key convention `<key>`, `<key>_error` and
// `<key>_header` and may be YAML, JSON or JSON with comments.
package table
