// Command tanuki-bench is a tiny flag-driven throughput probe for the
// storage core: it inits a grid of regions, writes a pseudo-random
// voxel into every eighth Y level of every column, then reads the same
// cells back, timing the write pass and the read pass separately.
//
// None of the in-pack CLI stacks (spf13/cobra, charmbracelet/bubbletea)
// fit a four-flag throughput probe this small, so this uses the
// standard flag package rather than pulling one in for its own sake.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rylanyancey/tanuki"
	"github.com/rylanyancey/tanuki/internal/xrand"
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/region"
)

func main() {
	regionsPerSide := flag.Int("regions", 2, "regions per side of the test grid")
	minY := flag.Int("min-y", -64, "world min Y")
	maxY := flag.Int("max-y", 320, "world max Y")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	world := tanuki.NewVoxelWorld(
		tanuki.VoxelConfig{MinY: int32(*minY), MaxY: int32(*maxY)},
		tanuki.WithLogger(tanuki.NewDefaultLogger("tanuki-bench", *debug)),
	)

	for rx := 0; rx < *regionsPerSide; rx++ {
		for rz := 0; rz < *regionsPerSide; rz++ {
			world.InitAndInsertRegion(ivec.NewVec2(int32(rx*region.RegionWidth), int32(rz*region.RegionWidth)))
		}
	}

	writer := world.Writer()
	rng := xrand.NewTestRng(0x376783987391)

	height := int32(*maxY - *minY)
	span := int32(*regionsPerSide * region.RegionWidth)

	start := time.Now()
	var written int
	for x := int32(0); x < span; x++ {
		for z := int32(0); z < span; z++ {
			for y := int32(0); y < height; y += 8 {
				pos := ivec.NewVec3(x, int32(*minY)+y, z)
				state := uint16(rng.Next() & 0xFF)
				writer.SetVoxel(pos, tanuki.Voxel(state))
				written++
			}
		}
	}
	writeElapsed := time.Since(start)

	reader := world.Reader()
	start = time.Now()
	var read int
	for x := int32(0); x < span; x++ {
		for z := int32(0); z < span; z++ {
			for y := int32(0); y < height; y += 8 {
				pos := ivec.NewVec3(x, int32(*minY)+y, z)
				reader.GetVoxel(pos)
				read++
			}
		}
	}
	readElapsed := time.Since(start)

	fmt.Printf("regions: %d\n", world.RegionCount())
	fmt.Printf("wrote %d voxels in %s (%.0f ops/s)\n", written, writeElapsed, float64(written)/writeElapsed.Seconds())
	fmt.Printf("read  %d voxels in %s (%.0f ops/s)\n", read, readElapsed, float64(read)/readElapsed.Seconds())
}
