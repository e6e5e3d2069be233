package tanuki

import (
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/region"
	"github.com/rylanyancey/tanuki/voxel"
)

// VoxelDir is one of the six axis-aligned step directions a Worm can
// advance along. Values are small and signed so Invert is a negation,
// mirroring the original source's VoxelDir enum (Up=1, Down=-1,
// East=2, West=-2, North=3, South=-3).
type VoxelDir int8

const (
	Up    VoxelDir = 1
	Down  VoxelDir = -1
	East  VoxelDir = 2
	West  VoxelDir = -2
	North VoxelDir = 3
	South VoxelDir = -3
)

// AllDirs enumerates every direction, in the order a flood-fill or
// light-propagation pass typically visits neighbors.
var AllDirs = [6]VoxelDir{Up, Down, East, West, North, South}

// Invert returns the opposite direction.
func (d VoxelDir) Invert() VoxelDir { return -d }

// Delta returns the unit step vector for d.
func (d VoxelDir) Delta() ivec.Vec3 {
	switch d {
	case Up:
		return ivec.NewVec3(0, 1, 0)
	case Down:
		return ivec.NewVec3(0, -1, 0)
	case East:
		return ivec.NewVec3(1, 0, 0)
	case West:
		return ivec.NewVec3(-1, 0, 0)
	case North:
		return ivec.NewVec3(0, 0, 1)
	case South:
		return ivec.NewVec3(0, 0, -1)
	default:
		return ivec.Vec3{}
	}
}

// wormCursor is the (region, position) pair a Worm/WormMut steps
// through. Grounded on the original source's WormData plus
// src/access/worm.rs's `Worm::next(&self, dir) -> Option<Self>`: a
// value type, copied and returned fresh on every step rather than
// mutated in place, so stepping is non-destructive — a caller can
// branch from one cursor down several directions without them
// interfering.
type wormCursor struct {
	world *VoxelWorld
	reg   *region.Region
	pos   ivec.Vec3
}

func newWormCursor(w *VoxelWorld, pos ivec.Vec3) (wormCursor, bool) {
	if pos.Y < w.config.MinY || pos.Y >= w.config.MaxY {
		return wormCursor{}, false
	}
	reg, ok := w.GetRegion(pos.XZ())
	if !ok {
		return wormCursor{}, false
	}
	return wormCursor{world: w, reg: reg, pos: pos}, true
}

// step returns the cursor one cell along dir, reporting whether the
// new position is still valid (in range and loaded). Moving along Y
// never consults the WorldMap: a region spans its VoxelWorld's entire
// height, so a pure Y step can only ever leave the world's Y range,
// never cross into a different (possibly absent) region. Only an X/Z
// step that crosses the current region's 512-wide XZ span re-derives
// the owning region via a WorldMap lookup.
func (c wormCursor) step(dir VoxelDir) (wormCursor, bool) {
	next := c.pos.Add(dir.Delta())
	if next.Y < c.world.config.MinY || next.Y >= c.world.config.MaxY {
		return c, false
	}

	offsX := next.X - c.reg.OriginX
	offsZ := next.Z - c.reg.OriginZ
	if uint32(offsX|offsZ) < region.RegionWidth {
		return wormCursor{world: c.world, reg: c.reg, pos: next}, true
	}

	reg, ok := c.world.GetRegion(next.XZ())
	if !ok {
		return c, false
	}
	return wormCursor{world: c.world, reg: reg, pos: next}, true
}

// Worm is a read-only stepping cursor over a VoxelWorld, for
// traversals (flood fills, ray marches, light propagation) that visit
// many adjacent cells and would otherwise pay a WorldMap lookup per
// cell. It caches the current region and position only; each read
// recomputes the subchunk and voxel indices from the position through
// the region's bounds-checked accessors. Worm is a value type: Step
// returns a new Worm rather than mutating the receiver, per the
// original source's Copy/Clone cursor semantics.
type Worm struct {
	cursor wormCursor
}

// NewWorm opens a Worm at pos. ok is false if pos's Y is out of range
// or its region isn't loaded.
func NewWorm(w *VoxelWorld, pos ivec.Vec3) (Worm, bool) {
	cur, ok := newWormCursor(w, pos)
	if !ok {
		return Worm{}, false
	}
	return Worm{cursor: cur}, true
}

// Pos returns the Worm's current position.
func (wm Worm) Pos() ivec.Vec3 { return wm.cursor.pos }

// Step returns a Worm one cell along dir from wm, reporting whether
// the new position is still valid (in range and loaded). On failure
// the returned Worm is wm unchanged.
func (wm Worm) Step(dir VoxelDir) (Worm, bool) {
	next, ok := wm.cursor.step(dir)
	if !ok {
		return wm, false
	}
	return Worm{cursor: next}, true
}

// Get reads the voxel state at the Worm's current position.
func (wm Worm) Get() voxel.Voxel {
	return wm.cursor.reg.GetVoxel(wm.cursor.pos)
}

// GetLight reads the light value at the Worm's current position.
func (wm Worm) GetLight() voxel.Light {
	return wm.cursor.reg.GetLight(wm.cursor.pos)
}

// WormMut is the mutable-access counterpart of Worm — "mutable" here
// means it can write through to the world at its current position,
// not that stepping mutates the cursor itself; WormMut is a value type
// with the same non-destructive Step as Worm.
type WormMut struct {
	cursor wormCursor
}

// NewWormMut opens a WormMut at pos.
func NewWormMut(w *VoxelWorld, pos ivec.Vec3) (WormMut, bool) {
	cur, ok := newWormCursor(w, pos)
	if !ok {
		return WormMut{}, false
	}
	return WormMut{cursor: cur}, true
}

// Pos returns the WormMut's current position.
func (wm WormMut) Pos() ivec.Vec3 { return wm.cursor.pos }

// Step returns a WormMut one cell along dir from wm. On failure the
// returned WormMut is wm unchanged.
func (wm WormMut) Step(dir VoxelDir) (WormMut, bool) {
	next, ok := wm.cursor.step(dir)
	if !ok {
		return wm, false
	}
	return WormMut{cursor: next}, true
}

// Get reads the voxel state at the WormMut's current position.
func (wm WormMut) Get() voxel.Voxel {
	return wm.cursor.reg.GetVoxel(wm.cursor.pos)
}

// Set writes the voxel state at the WormMut's current position.
func (wm WormMut) Set(v voxel.Voxel) {
	wm.cursor.reg.SetVoxel(wm.cursor.pos, v)
}

// Replace writes the voxel state at the WormMut's current position,
// returning the previous value.
func (wm WormMut) Replace(v voxel.Voxel) voxel.Voxel {
	prev, _ := wm.cursor.reg.ReplaceVoxel(wm.cursor.pos, v)
	return prev
}

// SetLight writes the light value at the WormMut's current position.
func (wm WormMut) SetLight(l voxel.Light) {
	wm.cursor.reg.SetLight(wm.cursor.pos, l)
}
