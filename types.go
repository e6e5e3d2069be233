package tanuki

import "github.com/rylanyancey/tanuki/voxel"

// Voxel, Light, and VoxelData are re-exported at the module root so
// callers of the VoxelWorld façade don't need to import the internal
// voxel package directly.
type (
	Voxel     = voxel.Voxel
	Light     = voxel.Light
	VoxelData = voxel.Data
)

// Air is the reserved empty voxel state.
const Air = voxel.Air

// FullLight and NoLight are the FULL and NONE light sentinels. A
// freshly allocated subchunk's LightMap reads NoLight everywhere until
// a write diverges it.
func FullLight() Light { return voxel.Full() }
func NoLight() Light   { return voxel.None() }
