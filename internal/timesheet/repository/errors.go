package repository

import "errors"

var (
	ErrFailedToLoadCatalog = errors.New("failed to load catalog")
	ErrFailedToAppend      = errors.New("failed to append entries")
)
