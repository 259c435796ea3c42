package recording

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/footing/assert"
	"github.com/oomph-ac/footing/foot"
	"github.com/oomph-ac/footing/internal"
	"github.com/oomph-ac/footing/oerror"
	"github.com/oomph-ac/footing/utils"
	"github.com/zeebo/xxh3"
)

// Version is written at the start of every encoded recording and must match when decoding.
const Version uint32 = 1

const frameSize = 8 + 1 + 4*10

// Frame is the state of a single character at the end of a rendered frame.
type Frame struct {
	Tick            uint64
	State           foot.State
	Position        mgl32.Vec3
	Velocity        mgl32.Vec3
	Normal          mgl32.Vec3
	HorizontalSpeed float32
}

// Recorder keeps the most recent frames of a character, so that runs can be compared and replayed.
type Recorder struct {
	frames *utils.CircularQueue[Frame]
}

// NewRecorder returns a Recorder that keeps up to capacity frames.
func NewRecorder(capacity int) *Recorder {
	assert.IsTrue(capacity > 0, "recorder capacity must be positive, got %d", capacity)
	return &Recorder{frames: utils.NewCircularQueue[Frame](capacity)}
}

// Add records a frame, dropping the oldest one if the recorder is full.
func (r *Recorder) Add(f Frame) {
	_, _, _ = r.frames.Append(f)
}

// Len returns the amount of frames recorded.
func (r *Recorder) Len() int {
	return r.frames.Len()
}

// Frames returns a copy of the recorded frames, oldest first.
func (r *Recorder) Frames() []Frame {
	frames := make([]Frame, 0, r.frames.Len())
	for _, f := range r.frames.All() {
		frames = append(frames, f)
	}
	return frames
}

// Reset removes all recorded frames.
func (r *Recorder) Reset() {
	r.frames.Clear()
}

// Encode returns the recorded frames in their binary form.
func (r *Recorder) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	var header [8]byte
	binary.LittleEndian.PutUint32(header[:4], Version)
	binary.LittleEndian.PutUint32(header[4:], uint32(r.frames.Len()))
	buf.Write(header[:])
	for _, f := range r.frames.All() {
		writeFrame(buf, f)
	}
	return bytes.Clone(buf.Bytes())
}

// Digest returns a hash of the recorded frames. Two recordings of the same frames have the same digest.
func (r *Recorder) Digest() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	h := xxh3.New()
	for _, f := range r.frames.All() {
		buf.Reset()
		writeFrame(buf, f)
		_, _ = h.Write(buf.Bytes())
	}
	return h.Sum64()
}

// Decode decodes frames previously encoded with Recorder.Encode.
func Decode(dat []byte) ([]Frame, error) {
	if len(dat) < 8 {
		return nil, oerror.New("recording too short for header: %d bytes", len(dat))
	}
	if v := binary.LittleEndian.Uint32(dat[:4]); v != Version {
		return nil, oerror.New("unsupported recording version %d (expected %d)", v, Version)
	}
	count := int(binary.LittleEndian.Uint32(dat[4:8]))
	dat = dat[8:]
	if len(dat) != count*frameSize {
		return nil, oerror.New("recording of %d frames has %d bytes of frame data (expected %d)", count, len(dat), count*frameSize)
	}

	frames := make([]Frame, count)
	for i := range frames {
		frames[i] = readFrame(dat[i*frameSize : (i+1)*frameSize])
	}
	return frames, nil
}

func writeFrame(buf *bytes.Buffer, f Frame) {
	var b [frameSize]byte
	binary.LittleEndian.PutUint64(b[:8], f.Tick)
	b[8] = byte(f.State)
	off := 9
	for _, vec := range [...]mgl32.Vec3{f.Position, f.Velocity, f.Normal} {
		for _, v := range vec {
			binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
			off += 4
		}
	}
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(f.HorizontalSpeed))
	buf.Write(b[:])
}

func readFrame(b []byte) (f Frame) {
	f.Tick = binary.LittleEndian.Uint64(b[:8])
	f.State = foot.State(b[8])
	off := 9
	for _, vec := range [...]*mgl32.Vec3{&f.Position, &f.Velocity, &f.Normal} {
		for i := range vec {
			vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
			off += 4
		}
	}
	f.HorizontalSpeed = math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
	return f
}
