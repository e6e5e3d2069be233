package tanuki

import (
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/region"
	"github.com/rylanyancey/tanuki/voxel"
)

// accessCache is a one-entry origin->region cache shared by Reader
// and Writer, grounded on the original source's access/mod.rs Cache
// (a Cell-based interior-mutability cache with no cross-thread
// exposure): a Reader/Writer is single-owner, so a plain struct field
// suffices where the source needed unsafe interior mutability.
type accessCache struct {
	key   ivec.Vec2
	value *region.Region
	valid bool
}

func (c *accessCache) search(xz ivec.Vec2, w *VoxelWorld) (*region.Region, bool) {
	origin := regionOrigin(xz)
	if c.valid && c.key == origin {
		return c.value, true
	}
	r, ok := w.GetRegion(origin)
	if !ok {
		return nil, false
	}
	c.key = origin
	c.value = r
	c.valid = true
	return r, true
}

func (c *accessCache) invalidate() { c.valid = false }

// Reader is a cached read-only accessor over a VoxelWorld: repeated
// lookups in the same region skip the WorldMap hash entirely.
type Reader struct {
	world *VoxelWorld
	cache accessCache
}

func newReader(w *VoxelWorld) *Reader { return &Reader{world: w} }

// GetVoxel reads the voxel state at pos, returning AIR if its region
// isn't loaded — a read never reports an out-of-bounds signal.
func (r *Reader) GetVoxel(pos ivec.Vec3) voxel.Voxel {
	reg, ok := r.cache.search(pos.XZ(), r.world)
	if !ok {
		return voxel.Air
	}
	return reg.GetVoxel(pos)
}

// GetLight reads the light value at pos, returning NONE if its region
// isn't loaded.
func (r *Reader) GetLight(pos ivec.Vec3) voxel.Light {
	reg, ok := r.cache.search(pos.XZ(), r.world)
	if !ok {
		return voxel.None()
	}
	return reg.GetLight(pos)
}

// GetData reads the (state, light) pair at pos, returning (AIR, NONE)
// if its region isn't loaded.
func (r *Reader) GetData(pos ivec.Vec3) voxel.Data {
	reg, ok := r.cache.search(pos.XZ(), r.world)
	if !ok {
		return voxel.Data{State: voxel.Air, Light: voxel.None()}
	}
	return reg.GetData(pos)
}

// Writer is the read-write counterpart of Reader.
type Writer struct {
	world *VoxelWorld
	cache accessCache
}

func newWriter(w *VoxelWorld) *Writer { return &Writer{world: w} }

// GetVoxel reads the voxel state at pos, returning AIR if its region
// isn't loaded.
func (w *Writer) GetVoxel(pos ivec.Vec3) voxel.Voxel {
	reg, ok := w.cache.search(pos.XZ(), w.world)
	if !ok {
		return voxel.Air
	}
	return reg.GetVoxel(pos)
}

// SetVoxel writes the voxel state at pos, if its region is loaded.
func (w *Writer) SetVoxel(pos ivec.Vec3, v voxel.Voxel) bool {
	reg, ok := w.cache.search(pos.XZ(), w.world)
	if !ok {
		return false
	}
	return reg.SetVoxel(pos, v)
}

// ReplaceVoxel writes the voxel state at pos, returning the previous
// state, if its region is loaded.
func (w *Writer) ReplaceVoxel(pos ivec.Vec3, v voxel.Voxel) (voxel.Voxel, bool) {
	reg, ok := w.cache.search(pos.XZ(), w.world)
	if !ok {
		return 0, false
	}
	return reg.ReplaceVoxel(pos, v)
}

// SetLight writes the light value at pos, if its region is loaded.
func (w *Writer) SetLight(pos ivec.Vec3, l voxel.Light) bool {
	reg, ok := w.cache.search(pos.XZ(), w.world)
	if !ok {
		return false
	}
	return reg.SetLight(pos, l)
}

// SetData writes the (state, light) pair at pos, if its region is loaded.
func (w *Writer) SetData(pos ivec.Vec3, d voxel.Data) bool {
	reg, ok := w.cache.search(pos.XZ(), w.world)
	if !ok {
		return false
	}
	return reg.SetData(pos, d)
}
