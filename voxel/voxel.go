// Package voxel defines the per-cell value types stored by the
// palette-compressed subchunk: the opaque voxel state id and the
// packed light record.
package voxel

// Voxel is an opaque 16-bit state id. Voxel 0 ("air") is reserved and
// is always present as palette entry 0 of every subchunk.
type Voxel uint16

// Air is the reserved empty state.
const Air Voxel = 0

// Light packs ambient/torch intensity and an HSL-ish color hint into
// two bytes: Intensity's high nibble is ambient (0..15), low nibble is
// torch (0..15); HSLColor's high nibble is hue, low nibble is
// lightness.
type Light struct {
	Intensity uint8
	HSLColor  uint8
}

// fullIntensity is the FULL sentinel's intensity byte (0x0F), with no
// color tint.
const fullIntensity uint8 = 0x0F

// Full returns the FULL light sentinel (intensity=0x0F).
func Full() Light { return Light{Intensity: fullIntensity} }

// None returns the NONE light sentinel (intensity=0).
func None() Light { return Light{} }

// Data is the composite (state, light) pair for a single voxel.
type Data struct {
	State Voxel
	Light Light
}
