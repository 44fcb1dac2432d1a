//go:build !ebiten

package ui

import "golife/internal/session"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(session.Layout) *Overlay { return &Overlay{} }

// DrawInstructions is a no-op placeholder.
func (o *Overlay) DrawInstructions(any, int, int) {}

// DrawButton is a no-op placeholder.
func (o *Overlay) DrawButton(any) {}

// DrawStatus is a no-op placeholder.
func (o *Overlay) DrawStatus(any, int, bool, string) {}
