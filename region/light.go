package region

import "github.com/rylanyancey/tanuki/voxel"

// subchunkCells is the fixed cell count of one subchunk's light buffer.
const subchunkCells = 32768

// uniformFull and uniformNone are shared, read-only light buffers a
// freshly created LightMap points at until a write forces it to
// diverge into an owned copy. The source carries the same pair
// (LIGHTMAP_UNIFORM_FULL / LIGHTMAP_UNIFORM_NONE) but its
// uniform_none constructor mistakenly points at the FULL static; this
// is corrected here per spec.md's documented fix — NONE references
// the NONE static.
var (
	uniformFull = makeUniform(voxel.Full())
	uniformNone = makeUniform(voxel.None())
)

func makeUniform(l voxel.Light) []voxel.Light {
	buf := make([]voxel.Light, subchunkCells)
	for i := range buf {
		buf[i] = l
	}
	return buf
}

// LightMap is a per-subchunk light buffer with copy-on-write sharing:
// a freshly allocated subchunk shares one of the two uniform static
// buffers until a write makes it diverge, at which point it is
// promoted to an owned, independently-mutable buffer.
type LightMap struct {
	buf      []voxel.Light
	isShared bool
}

// UniformFull returns a LightMap sharing the FULL static buffer.
func UniformFull() LightMap {
	return LightMap{buf: uniformFull, isShared: true}
}

// UniformNone returns a LightMap sharing the NONE static buffer.
func UniformNone() LightMap {
	return LightMap{buf: uniformNone, isShared: true}
}

// Get reads the light value at index i.
func (lm *LightMap) Get(i int) voxel.Light {
	return lm.buf[i]
}

// Set writes the light value at index i, promoting the buffer to an
// owned copy on first write if it is still sharing a uniform static.
func (lm *LightMap) Set(i int, l voxel.Light) {
	if lm.buf[i] == l {
		return
	}
	lm.ownedBuf()[i] = l
}

// ownedBuf returns the mutable backing slice, copying out of the
// shared static the first time a write actually diverges from it.
func (lm *LightMap) ownedBuf() []voxel.Light {
	if lm.isShared {
		owned := make([]voxel.Light, subchunkCells)
		copy(owned, lm.buf)
		lm.buf = owned
		lm.isShared = false
	}
	return lm.buf
}

// IsUniform reports whether every cell currently holds the same
// value (true for a freshly constructed LightMap, and remains true
// for an owned buffer whose writes never diverged from each other —
// checked lazily, not cached, since writes are rare relative to
// reads).
func (lm *LightMap) IsUniform() bool {
	if lm.isShared {
		return true
	}
	first := lm.buf[0]
	for _, v := range lm.buf[1:] {
		if v != first {
			return false
		}
	}
	return true
}
