package extract

import "errors"

var (
	ErrEmptyRow          = errors.New("row has no fields")
	ErrNoSignificantData = errors.New("no significant data in row")
	ErrRowOutOfRange     = errors.New("row number beyond end of input")
	ErrNoRowsExtracted   = errors.New("no rows extracted")
)
