package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rylanyancey/tanuki/alloc"
	"github.com/rylanyancey/tanuki/internal/xrand"
)

func TestArray_EmptyIsAllAir(t *testing.T) {
	arr := New(alloc.Default{})
	for i := 0; i < Length; i += 4096 {
		if arr.Get(i) != 0 {
			t.Errorf("index %d: expected air (0) on empty array, got %d", i, arr.Get(i))
		}
	}
	require.Equal(t, 1, arr.PaletteLen())
	require.Equal(t, 0, arr.BPI())
}

func TestArray_SetThenGetRoundTrips(t *testing.T) {
	arr := New(alloc.Default{})
	arr.Set(100, 7)
	assert.Equal(t, uint16(7), arr.Get(100))
	assert.Equal(t, uint16(0), arr.Get(101), "unrelated cell must stay air")
}

func TestArray_ReplaceReturnsPrevious(t *testing.T) {
	arr := New(alloc.Default{})
	arr.Set(5, 3)
	prev := arr.Replace(5, 9)
	assert.Equal(t, uint16(3), prev)
	assert.Equal(t, uint16(9), arr.Get(5))
}

func TestArray_BPIPromotesAsDistinctStatesGrow(t *testing.T) {
	arr := New(alloc.Default{})
	// 20 distinct non-air states should push the array past BPI=4
	// (capacity 16) and into BPI=8.
	for i := 0; i < 20; i++ {
		arr.Set(i, uint16(i+1))
	}
	if arr.BPI() < 8 {
		t.Errorf("expected BPI promoted to at least 8 after 20 distinct states, got %d", arr.BPI())
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, uint16(i+1), arr.Get(i), "cell %d", i)
	}
}

// TestArray_RandomRoundTrip mirrors the original source's
// palette_random test: for every cell, set a value derived from its
// index, then replace it with a random value in [0,512) (matching the
// source's `& 511` mask, which pushes the palette past 256 entries and
// exercises the BPI8->16 promotion), asserting the returned previous
// value matches, and finally that the new value reads back.
func TestArray_RandomRoundTrip(t *testing.T) {
	arr := New(alloc.Default{})
	rng := xrand.NewTestRng(0x3738787387391)

	for i := 0; i < Length; i++ {
		arr.Set(i, uint16(i&7))
	}

	got := make([]uint16, Length)
	for i := 0; i < Length; i++ {
		r := uint16(rng.Next() & 511)
		prev := arr.Replace(i, r)
		if prev != uint16(i&7) {
			t.Fatalf("index %d: expected previous value %d, got %d", i, i&7, prev)
		}
		got[i] = r
	}

	for i := 0; i < Length; i++ {
		if arr.Get(i) != got[i] {
			t.Fatalf("index %d: expected %d, got %d", i, got[i], arr.Get(i))
		}
	}
}

func TestArray_ForEachVisitsEveryCellInOrder(t *testing.T) {
	arr := New(alloc.Default{})
	arr.Set(0, 1)
	arr.Set(Length-1, 2)

	count := 0
	arr.ForEach(func(i int, state uint16) {
		switch i {
		case 0:
			assert.Equal(t, uint16(1), state)
		case Length - 1:
			assert.Equal(t, uint16(2), state)
		default:
			assert.Equal(t, uint16(0), state)
		}
		count++
	})
	assert.Equal(t, Length, count)
}

func TestFromFn_BuildsFromIndexFunction(t *testing.T) {
	arr := FromFn(alloc.Default{}, func(i int) uint16 {
		if i%1000 == 0 {
			return 5
		}
		return 0
	})
	assert.Equal(t, uint16(5), arr.Get(0))
	assert.Equal(t, uint16(5), arr.Get(1000))
	assert.Equal(t, uint16(0), arr.Get(1))
}
