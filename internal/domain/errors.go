package domain

import "errors"

// ErrDatasetNotFound is returned when the dataset file is missing or cannot
// be opened. It is terminal: no query can be answered without the dataset.
var ErrDatasetNotFound = errors.New("dataset not found")

var (
	ErrNotCategorical = errors.New("field is not categorical")
	ErrNotNumeric     = errors.New("field is not numeric")
)
