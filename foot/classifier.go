package foot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

// Contact is the point and surface normal of the ground last found under a body.
type Contact struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Classification is the outcome of a single ground classification.
type Classification struct {
	State   State
	Contact Contact
	// Overlap is true if the probe sphere touched walkable geometry.
	Overlap bool
	// Hit is true if the downward ray found a surface, so that Contact holds its point and normal.
	Hit bool
}

// Classifier determines the foot state of a body from two queries: a sphere overlap around the probe
// origin, and a short downward ray from the same origin to find the surface normal.
type Classifier struct {
	Query     Query
	Mask      Mask
	Radius    float32
	Offset    float32
	Threshold float32
}

// Classify returns the foot state of a body at the given position. up is the up axis of the body and
// places the probe origin Offset above the position. When no ground is found, prev is returned as the
// contact unchanged.
func (c Classifier) Classify(position, up mgl32.Vec3, prev Contact) Classification {
	origin := position.Add(up.Mul(c.Offset))
	if !c.Query.Overlaps(origin, c.Radius, c.Mask) {
		return Classification{State: Airborn, Contact: prev}
	}

	result := Classification{State: Grounded, Overlap: true}
	hit, ok := c.Query.Raycast(origin, game.Down, c.Radius*game.GroundRayMultiplier, c.Mask)
	if !ok {
		// The probe touches something, but the ray found no surface under it, which mostly happens when
		// the probe starts inside geometry. Stand on flat ground rather than start falling.
		result.Contact = Contact{Position: position, Normal: game.Up}
		return result
	}

	result.Hit = true
	result.Contact = Contact{Position: hit.Point, Normal: hit.Normal}
	if hit.Normal.Y() < c.Threshold {
		result.State = Sliding
	}
	return result
}
