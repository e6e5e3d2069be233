package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rylanyancey/tanuki/alloc"
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/region"
)

func testShape() region.Shape { return region.NewShape(-64, 320) }

func TestMap_InsertThenGet(t *testing.T) {
	m := New()
	r := region.New(0, 0, testShape(), alloc.Default{})
	m.Insert(r)

	got, ok := m.Get(ivec.NewVec2(0, 0))
	assert.True(t, ok)
	assert.Same(t, r, got)
}

func TestMap_GetMissingReturnsFalse(t *testing.T) {
	m := New()
	_, ok := m.Get(ivec.NewVec2(512, 512))
	assert.False(t, ok)
}

func TestMap_RemoveThenGetFails(t *testing.T) {
	m := New()
	r := region.New(0, 0, testShape(), alloc.Default{})
	m.Insert(r)

	assert.True(t, m.Remove(ivec.NewVec2(0, 0)))
	assert.False(t, m.Has(ivec.NewVec2(0, 0)))
	assert.Equal(t, 0, m.Len())
}

// TestMap_ManyRegionsSurviveRebuilds registers enough regions to force
// several rebuild cycles, then checks every one is still reachable
// under its own origin — the core perfect-hash property.
func TestMap_ManyRegionsSurviveRebuilds(t *testing.T) {
	m := New()
	shape := testShape()

	var origins []ivec.Vec2
	for x := int32(0); x < 16; x++ {
		for z := int32(0); z < 16; z++ {
			origin := ivec.NewVec2(x*region.RegionWidth, z*region.RegionWidth)
			r := region.New(origin.X, origin.Z, shape, alloc.Default{})
			m.Insert(r)
			origins = append(origins, origin)
		}
	}

	assert.Equal(t, len(origins), m.Len())
	for _, origin := range origins {
		r, ok := m.Get(origin)
		if !ok {
			t.Fatalf("region at origin %v missing after rebuilds", origin)
		}
		assert.Equal(t, origin, r.Origin())
	}
}

func TestMap_RemoveThenReinsertDifferentRegion(t *testing.T) {
	m := New()
	shape := testShape()

	r1 := region.New(0, 0, shape, alloc.Default{})
	r2 := region.New(region.RegionWidth, 0, shape, alloc.Default{})
	m.Insert(r1)
	m.Insert(r2)

	m.Remove(ivec.NewVec2(0, 0))

	r3 := region.New(0, 0, shape, alloc.Default{})
	m.Insert(r3)

	got, ok := m.Get(ivec.NewVec2(0, 0))
	assert.True(t, ok)
	assert.Same(t, r3, got)

	got2, ok := m.Get(ivec.NewVec2(region.RegionWidth, 0))
	assert.True(t, ok)
	assert.Same(t, r2, got2)
}

func TestToKey_NegativeOriginsDoNotCollideWithPositive(t *testing.T) {
	a := ToKey(ivec.NewVec2(-512, 0))
	b := ToKey(ivec.NewVec2(512, 0))
	if a == b {
		t.Errorf("expected distinct keys for -512 and 512, both got %d", a)
	}
}
