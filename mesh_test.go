package aiwire

import (
	"bytes"
	"errors"
	"testing"
)

func quadMesh(t *testing.T) Mesh {
	t.Helper()
	m := Mesh{
		Name:          MustFixedString("quad"),
		Primitives:    PrimitiveTriangle,
		MaterialIndex: 2,
		Vertices: []Vector3D{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Normals: []Vector3D{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		},
		Faces: []Face{
			{Indices: []uint32{0, 1, 2}},
			{Indices: []uint32{0, 2, 3}},
		},
	}
	m.TexCoords[0] = []Vector3D{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	m.UVComponents[0] = 2
	m.Colors[0] = []Color4D{
		{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1},
	}
	m.Bones = []Bone{
		{
			Name:   MustFixedString("root"),
			Offset: IdentityMatrix4x4(),
			Weights: []VertexWeight{
				{VertexIndex: 0, Weight: 1},
				{VertexIndex: 1, Weight: 0.5},
			},
		},
	}
	return m
}

func TestMeshWireRoundTrip(t *testing.T) {
	m := quadMesh(t)
	raw, err := m.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back Mesh
	if err := back.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(m) {
		t.Error("decoded mesh differs from original")
	}
	if back.UVComponents[0] != 2 {
		t.Errorf("UV components = %d", back.UVComponents[0])
	}
	if len(back.Bones) != 1 || len(back.Bones[0].Weights) != 2 {
		t.Errorf("bones did not survive: %+v", back.Bones)
	}

	raw2, _ := back.MarshalBinary()
	if !bytes.Equal(raw, raw2) {
		t.Error("re-encoded record differs from original bytes")
	}
}

// Optional attribute arrays stay absent, not zero-filled.
func TestMeshEmptyChannels(t *testing.T) {
	m := Mesh{
		Name:       MustFixedString("points"),
		Primitives: PrimitivePoint,
		Vertices:   []Vector3D{{1, 2, 3}},
	}
	raw, err := m.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back Mesh
	if err := back.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if back.Normals != nil || back.Tangents != nil || back.Faces != nil || back.Bones != nil {
		t.Error("absent arrays should decode as nil")
	}
	if !back.Equal(m) {
		t.Error("round trip changed the mesh")
	}
}

func TestPrimitiveKindFlags(t *testing.T) {
	p := PrimitiveTriangle | PrimitivePolygon
	if !p.Has(PrimitiveTriangle) || !p.Has(PrimitivePolygon) {
		t.Error("set bits not reported")
	}
	if p.Has(PrimitiveLine) {
		t.Error("unset bit reported")
	}
	// Unknown bits survive a round trip untouched.
	m := Mesh{Name: MustFixedString("x"), Primitives: p | PrimitiveKind(1<<9)}
	raw, _ := m.MarshalBinary()
	var back Mesh
	if err := back.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if back.Primitives != m.Primitives {
		t.Errorf("flags = %#x, want %#x", back.Primitives, m.Primitives)
	}
}

func TestMeshHugeCountRejected(t *testing.T) {
	m := quadMesh(t)
	raw, _ := m.MarshalBinary()
	// Vertex count sits right after name, primitives, material index.
	off := fixedStringWireSize + 8
	raw[off], raw[off+1], raw[off+2], raw[off+3] = 0xFF, 0xFF, 0xFF, 0x7F

	var back Mesh
	if err := back.UnmarshalBinary(raw); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated for impossible count, got %v", err)
	}
}
