// Package region implements the Region: the 512xHx512 allocation and
// ownership unit for a contiguous span of subchunks, their light
// buffers, and their chunk/subchunk metadata.
//
// Grounded on the original source's src/region/mod.rs, with its
// eager-parallel-array layout preserved (one Region owns every
// subchunk in its XZ column up front, rather than lazily paging
// subchunks in) and its bounds-check idiom kept (a cheap combined
// check before the cell-index decomposition any miss would otherwise
// waste).
package region

import (
	"github.com/google/uuid"

	"github.com/rylanyancey/tanuki/alloc"
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/palette"
	"github.com/rylanyancey/tanuki/voxel"
)

// Shape describes a region's vertical extent: min/max are the world Y
// bounds (shared by every region in a VoxelWorld), height is their
// span, and numSubchunks is the total subchunk count in one region
// column (chunksPerLayer subchunks per 32-voxel Y band).
type Shape struct {
	MinY, MaxY   int32
	Height       int32
	NumSubchunks int
}

// NewShape derives a Shape from the world's Y bounds. maxY-minY must
// already be validated as a positive multiple of SubchunkWidth by the
// caller (NewVoxelWorld does this once for the whole world).
func NewShape(minY, maxY int32) Shape {
	height := maxY - minY
	bands := int(height) / SubchunkWidth
	return Shape{
		MinY:         minY,
		MaxY:         maxY,
		Height:       height,
		NumSubchunks: bands * chunksPerLayer,
	}
}

// ChunkMeta is attached to each of a region's 256 XZ chunk columns.
// Empty today, mirroring the source's empty ChunkMeta marker — carried
// as a distinct type so future per-chunk bookkeeping (e.g. a dirty
// flag for incremental lighting) has somewhere to live without
// reshaping Region's arrays.
type ChunkMeta struct{}

// SubchunkMeta is attached to each of a region's subchunks. Empty
// today for the same reason as ChunkMeta.
type SubchunkMeta struct{}

// Region owns every subchunk within one 512x512 XZ column, for the
// full Y range of its VoxelWorld.
type Region struct {
	ID string // debug-only identifier, not used by any lookup path

	OriginX, OriginZ int32 // world-space XZ origin (region-aligned)
	Shape            Shape

	palettes      []*palette.Array
	lights        []LightMap
	subchunkMetas []SubchunkMeta
	chunkMetas    []ChunkMeta

	alloc alloc.Allocator
}

// New allocates a Region covering [originX, originX+512) x
// [originZ, originZ+512) in the XZ plane and shape.MinY..shape.MaxY
// vertically, eagerly constructing every subchunk's PaletteArray and
// LightMap.
func New(originX, originZ int32, shape Shape, a alloc.Allocator) *Region {
	r := &Region{
		ID:            uuid.NewString(),
		OriginX:       originX,
		OriginZ:       originZ,
		Shape:         shape,
		palettes:      make([]*palette.Array, shape.NumSubchunks),
		lights:        make([]LightMap, shape.NumSubchunks),
		subchunkMetas: make([]SubchunkMeta, shape.NumSubchunks),
		chunkMetas:    make([]ChunkMeta, chunksPerLayer),
		alloc:         a,
	}
	for i := range r.palettes {
		r.palettes[i] = palette.New(a)
		r.lights[i] = UniformNone()
	}
	return r
}

// Origin returns the region's XZ origin as a Vec2.
func (r *Region) Origin() ivec.Vec2 { return ivec.NewVec2(r.OriginX, r.OriginZ) }

// indexOf decomposes a world position into (subchunk index, voxel
// index), reporting ok=false if pos falls outside the region. The
// XZ bounds use the source's fused bitwise-OR trick (a negative
// offset wraps to a huge unsigned value, failing the single compare);
// Y is checked separately against Shape.Height, since a region's
// height is not itself bounded to 512 the way its XZ span is.
func (r *Region) indexOf(pos ivec.Vec3) (subchunk, voxelIdx int, ok bool) {
	offsX := pos.X - r.OriginX
	offsZ := pos.Z - r.OriginZ
	offsY := pos.Y - r.Shape.MinY

	if uint32(offsX|offsZ) >= RegionWidth {
		return 0, 0, false
	}
	if uint32(offsY) >= uint32(r.Shape.Height) {
		return 0, 0, false
	}

	chunkIdx := (int(offsX) >> SubchunkWidthShf) | ((int(offsZ) >> SubchunkWidthShf) << 4)
	subchunk = chunkIdx | ((int(offsY) >> SubchunkWidthShf) << 8)
	voxelIdx = (int(offsY) & 31) | ((int(offsX) & 31) << 5) | ((int(offsZ) & 31) << 10)
	return subchunk, voxelIdx, true
}

// GetVoxel reads the voxel state at pos, returning AIR if pos falls
// outside the region — reads never report an out-of-bounds signal,
// only writes do (per spec.md §4.5's asymmetric get/set contract).
func (r *Region) GetVoxel(pos ivec.Vec3) voxel.Voxel {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return voxel.Air
	}
	return voxel.Voxel(r.palettes[sc].Get(vi))
}

// SetVoxel writes the voxel state at pos. ok is false if pos is
// outside the region, in which case the write did not happen.
func (r *Region) SetVoxel(pos ivec.Vec3, v voxel.Voxel) (ok bool) {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return false
	}
	r.palettes[sc].Set(vi, uint16(v))
	return true
}

// ReplaceVoxel writes the voxel state at pos, returning the
// previous state. ok is false if pos is outside the region.
func (r *Region) ReplaceVoxel(pos ivec.Vec3, v voxel.Voxel) (prev voxel.Voxel, ok bool) {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return 0, false
	}
	return voxel.Voxel(r.palettes[sc].Replace(vi, uint16(v))), true
}

// GetLight reads the light value at pos, returning the NONE sentinel
// if pos falls outside the region.
func (r *Region) GetLight(pos ivec.Vec3) voxel.Light {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return voxel.None()
	}
	return r.lights[sc].Get(vi)
}

// SetLight writes the light value at pos.
func (r *Region) SetLight(pos ivec.Vec3, l voxel.Light) (ok bool) {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return false
	}
	r.lights[sc].Set(vi, l)
	return true
}

// GetData reads the combined (state, light) pair at pos, returning
// (AIR, NONE) if pos falls outside the region.
func (r *Region) GetData(pos ivec.Vec3) voxel.Data {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return voxel.Data{State: voxel.Air, Light: voxel.None()}
	}
	return voxel.Data{
		State: voxel.Voxel(r.palettes[sc].Get(vi)),
		Light: r.lights[sc].Get(vi),
	}
}

// SetData writes the combined (state, light) pair at pos.
func (r *Region) SetData(pos ivec.Vec3, d voxel.Data) (ok bool) {
	sc, vi, ok := r.indexOf(pos)
	if !ok {
		return false
	}
	r.palettes[sc].Set(vi, uint16(d.State))
	r.lights[sc].Set(vi, d.Light)
	return true
}

// Subchunk returns a read-only view of the subchunk containing pos.
func (r *Region) Subchunk(pos ivec.Vec3) (Subchunk, bool) {
	sc, _, ok := r.indexOf(pos)
	if !ok {
		return Subchunk{}, false
	}
	return Subchunk{region: r, index: sc, Meta: r.subchunkMetas[sc]}, true
}

// SubchunkMut returns a mutable view of the subchunk containing pos.
func (r *Region) SubchunkMut(pos ivec.Vec3) (SubchunkMut, bool) {
	sc, _, ok := r.indexOf(pos)
	if !ok {
		return SubchunkMut{}, false
	}
	return SubchunkMut{region: r, index: sc, Meta: r.subchunkMetas[sc]}, true
}

// Chunk returns a read-only view of the chunk column containing the
// XZ position xz (the column spans the region's full Y range).
func (r *Region) Chunk(xz ivec.Vec2) (Chunk, bool) {
	offsX := xz.X - r.OriginX
	offsZ := xz.Z - r.OriginZ
	if uint32(offsX|offsZ) >= RegionWidth {
		return Chunk{}, false
	}
	idx := (int(offsX) >> SubchunkWidthShf) | ((int(offsZ) >> SubchunkWidthShf) << 4)
	return Chunk{region: r, index: idx, Meta: r.chunkMetas[idx]}, true
}
