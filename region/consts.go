package region

// Fixed geometry constants for a region: 512x512 voxels wide, divided
// into a 16x16 grid of 32-wide chunks, each chunk holding one column
// of 32x32x32 subchunks. Grounded on the original source's consts.rs.
const (
	SubchunkWidth    = 32
	SubchunkWidthShf = 5

	RegionWidth       = 512
	RegionWidthShf    = 9
	RegionWidthChunks = RegionWidth / SubchunkWidth // 16
	chunksPerLayer    = RegionWidthChunks * RegionWidthChunks
)
