package glyph

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFont  = errors.New("unknown font")
	ErrUnknownStyle = errors.New("unknown border style")
	ErrInvalidFont  = errors.New("invalid FIGlet font")
)

// RenderFailure reports that a requested font or border could not be applied. The
// block returned alongside it was produced with Fallback instead.
type RenderFailure struct {
	Stage    string // "font" or "frame"
	Name     string
	Fallback string
	Err      error
}

func (e *RenderFailure) Error() string {
	return fmt.Sprintf("%s %q failed, using %q: %v", e.Stage, e.Name, e.Fallback, e.Err)
}

func (e *RenderFailure) Unwrap() error {
	return e.Err
}
