package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for dataset loading
var (
	ErrTagInvalidSchema = goerr.NewTag("invalid_schema")
	ErrTagInvalidRow    = goerr.NewTag("invalid_row")
	ErrTagEmptyDataset  = goerr.NewTag("empty_dataset")
)
