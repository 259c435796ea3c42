package game

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBBClipCollideFalling(t *testing.T) {
	floor := cube.Box(-1, -1, -1, 1, 0, 1)
	body := cube.Box(-0.3, 0.5, -0.3, 0.3, 2.3, 0.3)

	vel := BBClipCollide(floor, body, mgl32.Vec3{0, -1, 0}, false, nil)
	if !Float32ApproxEq(vel.Y(), -0.5) {
		t.Fatalf("expected fall to be clipped to -0.5, got %v", vel)
	}
	vel = BBClipCollide(floor, body, mgl32.Vec3{0, -0.2, 0}, false, nil)
	if vel.Y() != -0.2 {
		t.Fatalf("expected short fall to be kept, got %v", vel)
	}
}

func TestBBClipCollideSeparated(t *testing.T) {
	wall := cube.Box(5, 0, 5, 6, 2, 6)
	body := cube.Box(-0.3, 0, -0.3, 0.3, 1.8, 0.3)
	if vel := BBClipCollide(wall, body, mgl32.Vec3{0, 0, 1}, false, nil); vel != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("expected velocity past an unrelated box to be kept, got %v", vel)
	}
}

func TestBBClipCollideDepenetrate(t *testing.T) {
	floor := cube.Box(-1, -1, -1, 1, 0, 1)
	body := cube.Box(-0.3, -0.1, -0.3, 0.3, 1.7, 0.3)

	var penetration mgl32.Vec3
	vel := BBClipCollide(floor, body, mgl32.Vec3{}, false, &penetration)
	if !Float32ApproxEq(vel.Y(), 0.1) {
		t.Fatalf("expected body to be pushed up by 0.1, got %v", vel)
	}
	if !Float32ApproxEq(penetration.Y(), 0.1) {
		t.Fatalf("expected penetration of 0.1 on Y, got %v", penetration)
	}
	if vel := BBClipCollide(floor, body, mgl32.Vec3{}, true, nil); vel != (mgl32.Vec3{}) {
		t.Fatalf("expected one way collision to not push out, got %v", vel)
	}
}
