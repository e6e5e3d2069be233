package tanuki

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rylanyancey/tanuki/ivec"
)

func TestWorm_StepWithinSubchunk(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))

	worm, ok := NewWormMut(w, ivec.NewVec3(5, 5, 5))
	if !ok {
		t.Fatal("expected a worm at an in-bounds position inside a loaded region")
	}
	worm.Set(1)

	next, ok := worm.Step(Up)
	if !ok {
		t.Fatal("expected Up to succeed well within region bounds")
	}
	assert.Equal(t, ivec.NewVec3(5, 6, 5), next.Pos())
	assert.Equal(t, Voxel(0), next.Get(), "stepping must not carry the previous cell's value")
	assert.Equal(t, ivec.NewVec3(5, 5, 5), worm.Pos(), "stepping must not mutate the original cursor")
}

func TestWorm_StepAcrossSubchunkBoundary(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))

	worm, ok := NewWormMut(w, ivec.NewVec3(5, 31, 5))
	if !ok {
		t.Fatal("expected a worm at y=31")
	}
	worm.Set(42)

	next, ok := worm.Step(Up)
	if !ok {
		t.Fatal("expected Up across a subchunk boundary to succeed")
	}
	assert.Equal(t, int32(32), next.Pos().Y)

	writer := w.Writer()
	got := writer.GetVoxel(ivec.NewVec3(5, 32, 5))
	assert.Equal(t, Voxel(0), got)
}

func TestWorm_StepFailsPastWorldYRange(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))

	worm, ok := NewWorm(w, ivec.NewVec3(0, 319, 0))
	if !ok {
		t.Fatal("expected a worm at the top of the Y range")
	}
	if _, ok := worm.Step(Up); ok {
		t.Error("expected Up to fail at the top of the world's Y range")
	}
}

func TestWorm_StepAcrossRegionBoundary(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))
	w.InitAndInsertRegion(ivec.NewVec2(512, 0))

	worm, ok := NewWormMut(w, ivec.NewVec3(511, 0, 0))
	if !ok {
		t.Fatal("expected a worm at the edge of the first region")
	}
	worm.Set(5)

	next, ok := worm.Step(East)
	if !ok {
		t.Fatal("expected East to cross into the neighboring region")
	}
	assert.Equal(t, ivec.NewVec3(512, 0, 0), next.Pos())
}

func TestWorm_StepFailsIntoUnloadedRegion(t *testing.T) {
	w := newTestWorld()
	w.InitAndInsertRegion(ivec.NewVec2(0, 0))

	worm, ok := NewWormMut(w, ivec.NewVec3(511, 0, 0))
	if !ok {
		t.Fatal("expected a worm at the edge of the loaded region")
	}
	if _, ok := worm.Step(East); ok {
		t.Error("expected East to fail: the neighboring region isn't loaded")
	}
}

func TestVoxelDir_InvertIsInvolution(t *testing.T) {
	for _, d := range AllDirs {
		if d.Invert().Invert() != d {
			t.Errorf("Invert(Invert(%v)) != %v", d, d)
		}
	}
}
