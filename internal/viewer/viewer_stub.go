//go:build !cgo
// +build !cgo

package viewer

import (
	"errors"

	"github.com/appengine-ltd/forest-stand/internal/forest"
)

// Show is unavailable without cgo; raylib needs it.
func Show(stand forest.Stand, plotWidth, plotLength float64) error {
	return errors.New("the 3D viewer requires a cgo build (raylib enabled)")
}
