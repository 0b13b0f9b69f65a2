//go:build cgo
// +build cgo

// Package viewer renders a generated stand in a raylib window: trunks as
// cylinders, leaves as points, orbit camera around the plot center.
package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forest-stand/internal/forest"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

var (
	colorGround = rl.NewColor(46, 52, 46, 255)
	colorTrunk  = rl.NewColor(121, 85, 58, 255)
	colorLeaf   = rl.NewColor(86, 156, 74, 255)
)

// Show opens a window and renders the stand until the user closes it.
// plotWidth and plotLength size the ground plane and the camera orbit.
func Show(stand forest.Stand, plotWidth, plotLength float64) error {
	rl.InitWindow(windowWidth, windowHeight, "forest-stand")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	span := float32(plotWidth)
	if float32(plotLength) > span {
		span = float32(plotLength)
	}
	center := rl.NewVector3(float32(plotWidth)/2, 0, float32(plotLength)/2)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(center.X+span*1.2, span*0.9, center.Z+span*1.2),
		Target:     center,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(colorGround)

		rl.BeginMode3D(camera)
		rl.DrawGrid(int32(span), 1)
		for _, tree := range stand {
			drawTree(tree)
		}
		rl.EndMode3D()

		rl.DrawFPS(12, 12)
		rl.EndDrawing()
	}
	return nil
}

// drawTree maps the generator's z-up coordinates onto raylib's y-up world.
func drawTree(tree forest.Tree) {
	trunk := tree.Trunk
	rl.DrawCylinder(
		toWorld(trunk.Base),
		float32(trunk.Radius), float32(trunk.Radius),
		float32(trunk.Height), 8, colorTrunk,
	)
	for _, leaf := range tree.Leaves {
		rl.DrawPoint3D(toWorld(leaf.Center), colorLeaf)
	}
}

func toWorld(v forest.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Z), float32(v.Y))
}
