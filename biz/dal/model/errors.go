package model

import "errors"

var (
	// ErrStoreUnavailable reports that the record store could not be reached
	// or that its sheet, tab or table does not exist.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrRowShape reports a positional row whose length differs from the column schema.
	ErrRowShape = errors.New("row does not match column schema")
)
