// Package ivec provides minimal signed-integer 2D/3D vector math.
//
// The storage core addresses voxels with whole coordinates, never
// fractional ones, so a float vector type (such as go-gl/mathgl's
// mgl32.Vec3, used elsewhere in this module for floating-point
// bounds) is the wrong tool here. This mirrors the split in the
// teacher engine between its ECS math (float, mgl32) and its voxel
// volume code (integer, plain coordinate triples).
package ivec

// Vec2 is a signed 2D integer vector, used for region/chunk XZ origins.
type Vec2 struct {
	X, Z int32
}

// Vec3 is a signed 3D integer vector, used for voxel-space positions.
type Vec3 struct {
	X, Y, Z int32
}

func NewVec2(x, z int32) Vec2 { return Vec2{X: x, Z: z} }
func NewVec3(x, y, z int32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// XZ drops the Y component.
func (v Vec3) XZ() Vec2 { return Vec2{X: v.X, Z: v.Z} }

// WithY returns a copy of v with Y replaced.
func (v Vec3) WithY(y int32) Vec3 { v.Y = y; return v }

// WithX returns a copy of v with X replaced.
func (v Vec3) WithX(x int32) Vec3 { v.X = x; return v }

// WithZ returns a copy of v with Z replaced.
func (v Vec3) WithZ(z int32) Vec3 { v.Z = z; return v }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Z + b.Z} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Z - b.Z} }

// AndNot masks off the low bits of both components, used to round a
// position down to a region origin (origin = pos.XZ() &^ 511).
func (a Vec2) AndNot(mask int32) Vec2 { return Vec2{X: a.X &^ mask, Z: a.Z &^ mask} }
