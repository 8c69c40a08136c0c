package table

import (
	"errors"

	"github.com/goliatone/go-scilab/pkg/sigfig"
)

var (
	// ErrInvalidArgument is returned for specifications that violate the
	// table contract: no columns, mismatched lengths, negative or non-finite
	// numbers, unknown styles. It is the same sentinel sigfig uses.
	ErrInvalidArgument = sigfig.ErrInvalidArgument
	// ErrInvalidDocument is returned when a table document cannot be decoded.
	ErrInvalidDocument = errors.New("table: invalid document")
)
