// Package alloc gives a Region's buffers a pluggable allocation path,
// kept explicit so a per-region arena can be substituted later
// without changing call sites. Only the PaletteArray index-word
// buffers are allocated through it; palette entries, dedup caches and
// owned LightMap buffers are allocated with make and do not pass
// through an Allocator.
package alloc

import "github.com/rylanyancey/tanuki/voxel"

// Allocator is a per-buffer-kind allocation handle. It is small and
// clonable (a struct value, not a pointer) so it can be copied into
// every subchunk a Region owns, the way the source passes its
// allocator handle by value into each PaletteArray. LightMap does not
// carry one.
type Allocator interface {
	Uint64s(n int) []uint64
	Uint16s(n int) []uint16
	Lights(n int) []voxel.Light
}

// Default allocates every buffer with a plain make(), which is what
// every caller gets unless it explicitly opts into an arena.
type Default struct{}

func (Default) Uint64s(n int) []uint64     { return make([]uint64, n) }
func (Default) Uint16s(n int) []uint16     { return make([]uint16, n) }
func (Default) Lights(n int) []voxel.Light { return make([]voxel.Light, n) }
