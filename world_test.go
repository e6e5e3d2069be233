package tanuki

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rylanyancey/tanuki/ivec"
)

func newTestWorld() *VoxelWorld {
	return NewVoxelWorld(VoxelConfig{MinY: -64, MaxY: 320})
}

func TestNewVoxelWorld_PanicsOnInvertedYRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for max_y <= min_y")
		}
	}()
	NewVoxelWorld(VoxelConfig{MinY: 100, MaxY: 0})
}

func TestNewVoxelWorld_PanicsOnNonMultipleHeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a height not a multiple of 32")
		}
	}()
	NewVoxelWorld(VoxelConfig{MinY: 0, MaxY: 33})
}

func TestVoxelWorld_InitAndInsertRegionThenHasRegion(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec2(100, 100)

	assert.False(t, w.HasRegion(pos))
	_, created := w.InitAndInsertRegion(pos)
	assert.True(t, created)
	assert.True(t, w.HasRegion(pos))

	_, created = w.InitAndInsertRegion(pos)
	assert.False(t, created, "a second init of the same region must not create a new one")
	assert.Equal(t, 1, w.RegionCount())
}

func TestVoxelWorld_InitRegionDoesNotRegister(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec2(0, 0)

	r := w.InitRegion(pos)
	assert.NotNil(t, r)
	assert.False(t, w.HasRegion(pos), "InitRegion must not register the region it builds")
	assert.Equal(t, 0, w.RegionCount())
}

func TestVoxelWorld_InsertReturnsReplacedRegion(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec2(0, 0)

	first := w.InitRegion(pos)
	_, replaced := w.Insert(first)
	assert.False(t, replaced)

	second := w.InitRegion(pos)
	prev, replaced := w.Insert(second)
	assert.True(t, replaced)
	assert.Same(t, first, prev)

	got, ok := w.GetRegion(pos)
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestVoxelWorld_RemoveRegion(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec2(0, 0)
	w.InitAndInsertRegion(pos)

	assert.True(t, w.RemoveRegion(pos))
	assert.False(t, w.HasRegion(pos))
	assert.False(t, w.RemoveRegion(pos), "removing an absent region reports false")
}

func TestVoxelWorld_WriterThenReaderRoundTrip(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec3(10, 10, 10)
	w.InitAndInsertRegion(pos.XZ())

	writer := w.Writer()
	assert.True(t, writer.SetVoxel(pos, 77))

	reader := w.Reader()
	v := reader.GetVoxel(pos)
	assert.Equal(t, Voxel(77), v)
}

func TestVoxelWorld_GetVoxelFallsBackToAirWithoutLoadedRegion(t *testing.T) {
	w := newTestWorld()
	pos := ivec.NewVec3(0, 0, 0)

	assert.Equal(t, Air, w.GetVoxel(pos))
	assert.False(t, w.SetVoxel(pos, 1), "a write against an unloaded region must report false")

	reader := w.Reader()
	assert.Equal(t, Air, reader.GetVoxel(pos))
}

func TestVoxelWorld_BoundsSpansLoadedRegions(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))
	w.InitAndInsertRegion(ivec.NewVec2(512, 512))

	min, max, ok := w.Bounds()
	assert.True(t, ok)
	assert.Equal(t, float32(0), min.X())
	assert.Equal(t, float32(1024), max.X())
	assert.Equal(t, float32(-64), min.Y())
	assert.Equal(t, float32(320), max.Y())
}

func TestVoxelWorld_BoundsEmptyWorld(t *testing.T) {
	w := newTestWorld()
	_, _, ok := w.Bounds()
	assert.False(t, ok)
}
