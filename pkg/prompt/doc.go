// Package prompt asks for the table metadata a document leaves out. The
// Driver interface keeps the terminal out of the fill logic so it can be
// scripted in tests; NewSurveyDriver returns the interactive implementation.
package prompt
