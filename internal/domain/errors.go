package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownBoard    = errors.New("unknown board")
	ErrCatalogEmpty    = errors.New("catalog source returned no entities")
	ErrMapNotReady     = errors.New("map engine not ready")
)
