package foot

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/game"
)

type fakeQuery struct {
	overlap bool
	hit     *RaycastHit

	lastOrigin mgl32.Vec3
	lastRadius float32
	lastDist   float32
}

func (q *fakeQuery) Overlaps(center mgl32.Vec3, radius float32, mask Mask) bool {
	q.lastOrigin, q.lastRadius = center, radius
	return q.overlap
}

func (q *fakeQuery) Raycast(origin, dir mgl32.Vec3, maxDistance float32, mask Mask) (RaycastHit, bool) {
	q.lastDist = maxDistance
	if q.hit == nil {
		return RaycastHit{}, false
	}
	return *q.hit, true
}

func (q *fakeQuery) ground(normal mgl32.Vec3) {
	q.overlap = true
	q.hit = &RaycastHit{Normal: normal, Distance: 0.2}
}

func (q *fakeQuery) air() {
	q.overlap, q.hit = false, nil
}

type fakeFrame struct {
	pos mgl32.Vec3
	rot mgl32.Quat
}

func newFakeFrame(pos mgl32.Vec3) *fakeFrame {
	return &fakeFrame{pos: pos, rot: mgl32.QuatIdent()}
}

func (f *fakeFrame) Position() mgl32.Vec3 { return f.pos }

func (f *fakeFrame) Rotate(axis mgl32.Vec3, degrees float32) {
	f.rot = mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize()).Mul(f.rot).Normalize()
}

func (f *fakeFrame) Forward() mgl32.Vec3 { return f.rot.Rotate(game.Forward) }
func (f *fakeFrame) Right() mgl32.Vec3   { return f.rot.Rotate(game.Right) }
func (f *fakeFrame) Up() mgl32.Vec3      { return f.rot.Rotate(game.Up) }

type appliedForce struct {
	force mgl32.Vec3
	mode  ForceMode
}

type fakeBody struct {
	frame  *fakeFrame
	vel    mgl32.Vec3
	moveTo *mgl32.Vec3
	forces []appliedForce
}

func (b *fakeBody) Position() mgl32.Vec3        { return b.frame.pos }
func (b *fakeBody) Velocity() mgl32.Vec3        { return b.vel }
func (b *fakeBody) SetVelocity(vel mgl32.Vec3)  { b.vel = vel }
func (b *fakeBody) MovePosition(pos mgl32.Vec3) { b.moveTo = &pos }

func (b *fakeBody) AddForce(force mgl32.Vec3, mode ForceMode) {
	b.forces = append(b.forces, appliedForce{force: force, mode: mode})
}

func (b *fakeBody) reset() {
	b.forces, b.moveTo = nil, nil
}

// newTestSystem returns an initialised System standing on flat ground at the origin.
func newTestSystem(opts Options) (*System, *fakeQuery, *fakeFrame, *fakeBody) {
	q := &fakeQuery{}
	q.ground(game.Up)
	frame := newFakeFrame(mgl32.Vec3{})
	body := &fakeBody{frame: frame}

	s := New(q, opts)
	if err := s.Init(frame, nil, body, Layer(0)); err != nil {
		panic(err)
	}
	return s, q, frame, body
}
