package aiwire

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vector2D is a 2-component single-precision vector, 8 bytes on the
// wire.
type Vector2D struct {
	X, Y float32
}

// Vector3D is a 3-component single-precision vector, 12 bytes on the
// wire. Positions and directions inside boundary structures are always
// expressed in the local space of the node that owns the entity.
type Vector3D struct {
	X, Y, Z float32
}

// Color3D is an RGB color without alpha, 12 bytes on the wire.
// Components are conventionally positive but unbounded above; values
// greater than 1 express HDR-like emission intensity.
type Color3D struct {
	R, G, B float32
}

// Color4D is an RGBA color, 16 bytes on the wire.
type Color4D struct {
	R, G, B, A float32
}

// Quaternion stores rotation as (w, x, y, z), 16 bytes on the wire in
// that order.
type Quaternion struct {
	W, X, Y, Z float32
}

// Matrix3x3 is a row-major 3x3 matrix. Field names follow the native
// convention: the letter is the row, the digit the column.
type Matrix3x3 struct {
	A1, A2, A3 float32
	B1, B2, B3 float32
	C1, C2, C3 float32
}

// Matrix4x4 is a row-major 4x4 matrix, 64 bytes on the wire in row
// order.
type Matrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// IdentityMatrix4x4 returns the 4x4 identity transform, the default
// transformation of a freshly constructed node.
func IdentityMatrix4x4() Matrix4x4 {
	return Matrix4x4{
		A1: 1,
		B2: 1,
		C3: 1,
		D4: 1,
	}
}

// Texel is one uncompressed texture pixel in the native BGRA byte
// order (ARGB8888 read little-endian).
type Texel struct {
	B, G, R, A uint8
}

// Conversions to and from the mathgl types used by in-process scene
// code. Both sides are float32, so every conversion is lossless.

func (v Vector2D) Mgl() mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

func (v Vector3D) Mgl() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func Vector3DFromMgl(v mgl32.Vec3) Vector3D {
	return Vector3D{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (c Color3D) Mgl() mgl32.Vec3 { return mgl32.Vec3{c.R, c.G, c.B} }

func Color3DFromMgl(v mgl32.Vec3) Color3D {
	return Color3D{R: v.X(), G: v.Y(), B: v.Z()}
}

func (c Color4D) Mgl() mgl32.Vec4 { return mgl32.Vec4{c.R, c.G, c.B, c.A} }

func (q Quaternion) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func QuaternionFromMgl(q mgl32.Quat) Quaternion {
	return Quaternion{W: q.W, X: q.V.X(), Y: q.V.Y(), Z: q.V.Z()}
}

// Mgl transposes into mathgl's column-major layout.
func (m Matrix4x4) Mgl() mgl32.Mat4 {
	return mgl32.Mat4{
		m.A1, m.B1, m.C1, m.D1,
		m.A2, m.B2, m.C2, m.D2,
		m.A3, m.B3, m.C3, m.D3,
		m.A4, m.B4, m.C4, m.D4,
	}
}

func Matrix4x4FromMgl(m mgl32.Mat4) Matrix4x4 {
	return Matrix4x4{
		A1: m[0], B1: m[1], C1: m[2], D1: m[3],
		A2: m[4], B2: m[5], C2: m[6], D2: m[7],
		A3: m[8], B3: m[9], C3: m[10], D3: m[11],
		A4: m[12], B4: m[13], C4: m[14], D4: m[15],
	}
}

func (m Matrix3x3) Mgl() mgl32.Mat3 {
	return mgl32.Mat3{
		m.A1, m.B1, m.C1,
		m.A2, m.B2, m.C2,
		m.A3, m.B3, m.C3,
	}
}

// Wire codecs. Fields are written in declaration order with no
// padding.

func (v Vector2D) encode(w *wireWriter) {
	w.f32(v.X)
	w.f32(v.Y)
}

func decodeVector2D(r *wireReader) Vector2D {
	return Vector2D{X: r.f32(), Y: r.f32()}
}

func (v Vector3D) encode(w *wireWriter) {
	w.f32(v.X)
	w.f32(v.Y)
	w.f32(v.Z)
}

func decodeVector3D(r *wireReader) Vector3D {
	return Vector3D{X: r.f32(), Y: r.f32(), Z: r.f32()}
}

func (c Color3D) encode(w *wireWriter) {
	w.f32(c.R)
	w.f32(c.G)
	w.f32(c.B)
}

func decodeColor3D(r *wireReader) Color3D {
	return Color3D{R: r.f32(), G: r.f32(), B: r.f32()}
}

func (c Color4D) encode(w *wireWriter) {
	w.f32(c.R)
	w.f32(c.G)
	w.f32(c.B)
	w.f32(c.A)
}

func decodeColor4D(r *wireReader) Color4D {
	return Color4D{R: r.f32(), G: r.f32(), B: r.f32(), A: r.f32()}
}

func (q Quaternion) encode(w *wireWriter) {
	w.f32(q.W)
	w.f32(q.X)
	w.f32(q.Y)
	w.f32(q.Z)
}

func decodeQuaternion(r *wireReader) Quaternion {
	return Quaternion{W: r.f32(), X: r.f32(), Y: r.f32(), Z: r.f32()}
}

func (m Matrix4x4) encode(w *wireWriter) {
	for _, f := range [16]float32{
		m.A1, m.A2, m.A3, m.A4,
		m.B1, m.B2, m.B3, m.B4,
		m.C1, m.C2, m.C3, m.C4,
		m.D1, m.D2, m.D3, m.D4,
	} {
		w.f32(f)
	}
}

func decodeMatrix4x4(r *wireReader) Matrix4x4 {
	var m Matrix4x4
	m.A1, m.A2, m.A3, m.A4 = r.f32(), r.f32(), r.f32(), r.f32()
	m.B1, m.B2, m.B3, m.B4 = r.f32(), r.f32(), r.f32(), r.f32()
	m.C1, m.C2, m.C3, m.C4 = r.f32(), r.f32(), r.f32(), r.f32()
	m.D1, m.D2, m.D3, m.D4 = r.f32(), r.f32(), r.f32(), r.f32()
	return m
}
