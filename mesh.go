package aiwire

// PrimitiveKind is a bit set of the primitive types a mesh contains.
// Values match the native bit flags. Unlike the discriminated
// enumerations, a flag word is permissive: unknown bits pass through
// untouched so newer native flags survive a round trip.
type PrimitiveKind uint32

const (
	PrimitivePoint    PrimitiveKind = 1 << 0
	PrimitiveLine     PrimitiveKind = 1 << 1
	PrimitiveTriangle PrimitiveKind = 1 << 2
	PrimitivePolygon  PrimitiveKind = 1 << 3
)

// Has reports whether all bits of k are set.
func (p PrimitiveKind) Has(k PrimitiveKind) bool { return p&k == k }

const (
	// MaxColorSets is the number of vertex color channels a mesh can
	// carry, matching the native constant.
	MaxColorSets = 8
	// MaxUVChannels is the number of texture coordinate channels,
	// matching the native constant.
	MaxUVChannels = 8
)

// VertexWeight binds one vertex to a bone with the given influence.
type VertexWeight struct {
	VertexIndex uint32
	Weight      float32
}

// Bone deforms a subset of a mesh's vertices. Offset transforms from
// mesh space into bone space in the bind pose.
type Bone struct {
	Name    FixedString
	Offset  Matrix4x4
	Weights []VertexWeight
}

// Face is one primitive as indices into the mesh vertex arrays.
// 1 index = point, 2 = line, 3 = triangle, more = polygon.
type Face struct {
	Indices []uint32
}

// Mesh is one batch of geometry with a single material. Vertex
// attribute arrays are either empty or exactly len(Vertices) long;
// the codec transports whatever lengths it is given and leaves that
// agreement to the producer, like every other cross-field contract
// here.
type Mesh struct {
	Name          FixedString
	Primitives    PrimitiveKind
	MaterialIndex uint32
	Vertices      []Vector3D
	Normals       []Vector3D
	Tangents      []Vector3D
	Bitangents    []Vector3D
	Colors        [MaxColorSets][]Color4D
	TexCoords     [MaxUVChannels][]Vector3D
	// UVComponents says how many components of each TexCoords channel
	// are meaningful (commonly 2; 1 for ramps, 3 for cube maps).
	UVComponents [MaxUVChannels]uint32
	Faces        []Face
	Bones        []Bone
}

func (m *Mesh) MarshalBinary() ([]byte, error) {
	var w wireWriter
	m.encode(&w)
	return w.buf, nil
}

func (m *Mesh) encode(w *wireWriter) {
	m.Name.encode(w)
	w.u32(uint32(m.Primitives))
	w.u32(m.MaterialIndex)
	encodeVec3s(w, m.Vertices)
	encodeVec3s(w, m.Normals)
	encodeVec3s(w, m.Tangents)
	encodeVec3s(w, m.Bitangents)
	for ch := 0; ch < MaxColorSets; ch++ {
		w.u32(uint32(len(m.Colors[ch])))
		for _, c := range m.Colors[ch] {
			c.encode(w)
		}
	}
	for ch := 0; ch < MaxUVChannels; ch++ {
		w.u32(m.UVComponents[ch])
		encodeVec3s(w, m.TexCoords[ch])
	}
	w.u32(uint32(len(m.Faces)))
	for i := range m.Faces {
		w.u32(uint32(len(m.Faces[i].Indices)))
		for _, idx := range m.Faces[i].Indices {
			w.u32(idx)
		}
	}
	w.u32(uint32(len(m.Bones)))
	for i := range m.Bones {
		b := &m.Bones[i]
		b.Name.encode(w)
		b.Offset.encode(w)
		w.u32(uint32(len(b.Weights)))
		for _, vw := range b.Weights {
			w.u32(vw.VertexIndex)
			w.f32(vw.Weight)
		}
	}
}

func encodeVec3s(w *wireWriter, vs []Vector3D) {
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		v.encode(w)
	}
}

func decodeVec3s(r *wireReader) []Vector3D {
	n := r.count(12)
	if r.err != nil || n == 0 {
		return nil
	}
	vs := make([]Vector3D, n)
	for i := range vs {
		vs[i] = decodeVector3D(r)
	}
	return vs
}

func (m *Mesh) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeMesh(&r)
	if err != nil {
		return err
	}
	*m = out
	return nil
}

func decodeMesh(r *wireReader) (Mesh, error) {
	var m Mesh
	name, err := decodeFixedString(r)
	if err != nil {
		return Mesh{}, err
	}
	m.Name = name
	m.Primitives = PrimitiveKind(r.u32())
	m.MaterialIndex = r.u32()
	m.Vertices = decodeVec3s(r)
	m.Normals = decodeVec3s(r)
	m.Tangents = decodeVec3s(r)
	m.Bitangents = decodeVec3s(r)
	for ch := 0; ch < MaxColorSets; ch++ {
		n := r.count(16)
		if r.err != nil {
			return Mesh{}, r.err
		}
		if n > 0 {
			m.Colors[ch] = make([]Color4D, n)
			for i := range m.Colors[ch] {
				m.Colors[ch][i] = decodeColor4D(r)
			}
		}
	}
	for ch := 0; ch < MaxUVChannels; ch++ {
		m.UVComponents[ch] = r.u32()
		m.TexCoords[ch] = decodeVec3s(r)
	}
	faceCount := r.count(4)
	if r.err != nil {
		return Mesh{}, r.err
	}
	if faceCount > 0 {
		m.Faces = make([]Face, faceCount)
		for i := range m.Faces {
			n := r.count(4)
			if r.err != nil {
				return Mesh{}, r.err
			}
			if n > 0 {
				m.Faces[i].Indices = make([]uint32, n)
				for j := range m.Faces[i].Indices {
					m.Faces[i].Indices[j] = r.u32()
				}
			}
		}
	}
	boneCount := r.count(fixedStringWireSize + 64 + 4)
	if r.err != nil {
		return Mesh{}, r.err
	}
	for i := 0; i < boneCount; i++ {
		var b Bone
		b.Name, err = decodeFixedString(r)
		if err != nil {
			return Mesh{}, err
		}
		b.Offset = decodeMatrix4x4(r)
		n := r.count(8)
		if r.err != nil {
			return Mesh{}, r.err
		}
		if n > 0 {
			b.Weights = make([]VertexWeight, n)
			for j := range b.Weights {
				b.Weights[j].VertexIndex = r.u32()
				b.Weights[j].Weight = r.f32()
			}
		}
		m.Bones = append(m.Bones, b)
	}
	if r.err != nil {
		return Mesh{}, r.err
	}
	return m, nil
}

// Equal compares all geometry, channels, faces and bones.
func (m Mesh) Equal(o Mesh) bool {
	if !m.Name.Equal(o.Name) || m.Primitives != o.Primitives || m.MaterialIndex != o.MaterialIndex {
		return false
	}
	if !vec3sEqual(m.Vertices, o.Vertices) || !vec3sEqual(m.Normals, o.Normals) ||
		!vec3sEqual(m.Tangents, o.Tangents) || !vec3sEqual(m.Bitangents, o.Bitangents) {
		return false
	}
	for ch := 0; ch < MaxColorSets; ch++ {
		if len(m.Colors[ch]) != len(o.Colors[ch]) {
			return false
		}
		for i := range m.Colors[ch] {
			if m.Colors[ch][i] != o.Colors[ch][i] {
				return false
			}
		}
	}
	for ch := 0; ch < MaxUVChannels; ch++ {
		if m.UVComponents[ch] != o.UVComponents[ch] || !vec3sEqual(m.TexCoords[ch], o.TexCoords[ch]) {
			return false
		}
	}
	if len(m.Faces) != len(o.Faces) || len(m.Bones) != len(o.Bones) {
		return false
	}
	for i := range m.Faces {
		if len(m.Faces[i].Indices) != len(o.Faces[i].Indices) {
			return false
		}
		for j := range m.Faces[i].Indices {
			if m.Faces[i].Indices[j] != o.Faces[i].Indices[j] {
				return false
			}
		}
	}
	for i := range m.Bones {
		a, b := &m.Bones[i], &o.Bones[i]
		if !a.Name.Equal(b.Name) || a.Offset != b.Offset || len(a.Weights) != len(b.Weights) {
			return false
		}
		for j := range a.Weights {
			if a.Weights[j] != b.Weights[j] {
				return false
			}
		}
	}
	return true
}

func vec3sEqual(a, b []Vector3D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
