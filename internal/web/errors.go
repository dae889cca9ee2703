package web

import "errors"

var (
	ErrStyleDir     = errors.New("stylesheet directory is not usable")
	ErrMissingStyle    = errors.New("stylesheet file missing")
	ErrNoDecision   = errors.New("no stylesheet decision in request context")
)
