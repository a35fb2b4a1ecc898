// Package aiwire defines the boundary data model for a native
// asset-import library: plain Go value types whose wire form is
// bit-compatible with the native structs that cross the library
// boundary (lights, cameras, meshes, materials, textures, nodes,
// animations and the scene container that owns them).
//
// Every boundary type comes in two shapes: the typed Go struct that
// application code reads and writes, and a little-endian wire record
// produced by MarshalBinary and consumed by UnmarshalBinary. Field
// order and widths of the wire record are fixed by the native ABI;
// translation between the two shapes is lossless and never enforces
// cross-field invariants (what a field means for a given entity kind
// is documented per field, not checked).
//
// Translation failures are limited to two conditions: an integer
// arriving where an enumeration is expected that names no variant
// (UnknownEnumError) and text that exceeds a fixed native buffer
// (TooLongError). Everything else round-trips verbatim.
package aiwire
