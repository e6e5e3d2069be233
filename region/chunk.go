package region

import (
	"fmt"

	"github.com/rylanyancey/tanuki/palette"
	"github.com/rylanyancey/tanuki/voxel"
)

// Subchunk is a read-only view of one of a Region's 32x32x32 voxel
// volumes, addressed by its flat subchunk index within the region.
// It holds no data of its own — a borrow, not a copy, the same
// relationship the original source's Subchunk<'s> has to its Region.
type Subchunk struct {
	region *Region
	index  int

	Meta SubchunkMeta
}

// Palette returns the subchunk's backing PaletteArray.
func (s Subchunk) Palette() *palette.Array { return s.region.palettes[s.index] }

// Light returns the subchunk's light buffer.
func (s Subchunk) Light() *LightMap { return &s.region.lights[s.index] }

// Get reads the voxel state at a local cell index ([0, palette.Length)).
func (s Subchunk) Get(cell int) voxel.Voxel {
	return voxel.Voxel(s.region.palettes[s.index].Get(cell))
}

// SubchunkMut is the mutable counterpart of Subchunk.
type SubchunkMut struct {
	region *Region
	index  int

	Meta SubchunkMeta
}

// Palette returns the subchunk's backing PaletteArray.
func (s SubchunkMut) Palette() *palette.Array { return s.region.palettes[s.index] }

// Light returns the subchunk's light buffer.
func (s SubchunkMut) Light() *LightMap { return &s.region.lights[s.index] }

// Get reads the voxel state at a local cell index ([0, palette.Length)).
func (s SubchunkMut) Get(cell int) voxel.Voxel {
	return voxel.Voxel(s.region.palettes[s.index].Get(cell))
}

// Set writes the voxel state at a local cell index.
func (s SubchunkMut) Set(cell int, v voxel.Voxel) {
	s.region.palettes[s.index].Set(cell, uint16(v))
}

// Replace writes the voxel state at a local cell index, returning the
// previous value.
func (s SubchunkMut) Replace(cell int, v voxel.Voxel) voxel.Voxel {
	return voxel.Voxel(s.region.palettes[s.index].Replace(cell, uint16(v)))
}

// Chunk is a read-only view of one of a Region's 16x16 XZ columns
// (spanning the region's full Y range).
type Chunk struct {
	region *Region
	index  int

	Meta ChunkMeta
}

// SubchunkHandle is one disjoint mutable subchunk handle returned by
// Region.Split — the "split primitive" standing in for the original
// source's unsafe raw-pointer aliasing, letting a caller obtain
// several independent mutable subchunk views from one Region in a
// single borrow-checked call.
type SubchunkHandle struct {
	SubchunkMut
	Index int // the subchunk index this handle corresponds to, for bookkeeping
}

// Split returns one SubchunkMut handle per requested subchunk index,
// failing if any index is out of range or repeated — the Go
// translation of "mutable access to several subchunks of one Region at
// once" that the original source gets for free via raw pointers and
// this module gets by handing out index-tagged views instead of
// aliasing slices directly.
func (r *Region) Split(indices []int) ([]SubchunkHandle, error) {
	seen := make(map[int]bool, len(indices))
	out := make([]SubchunkHandle, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(r.palettes) {
			return nil, fmt.Errorf("tanuki/region: split index %d out of range [0, %d)", idx, len(r.palettes))
		}
		if seen[idx] {
			return nil, fmt.Errorf("tanuki/region: split index %d requested more than once", idx)
		}
		seen[idx] = true
		out = append(out, SubchunkHandle{
			SubchunkMut: SubchunkMut{region: r, index: idx, Meta: r.subchunkMetas[idx]},
			Index:       idx,
		})
	}
	return out, nil
}
