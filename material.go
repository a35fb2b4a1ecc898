package aiwire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PropertyKind tags the payload of one material property.
// Discriminants match the native property-type enumeration; note that
// they start at 1, not 0.
type PropertyKind uint32

const (
	PropertyFloat32 PropertyKind = 1
	PropertyFloat64 PropertyKind = 2
	PropertyString  PropertyKind = 3
	PropertyInt32   PropertyKind = 4
	PropertyBuffer  PropertyKind = 5
)

func PropertyKindFromNative(v int32) (PropertyKind, error) {
	if v < int32(PropertyFloat32) || v > int32(PropertyBuffer) {
		return PropertyBuffer, &UnknownEnumError{Enum: "property kind", Value: int64(v)}
	}
	return PropertyKind(v), nil
}

func (k PropertyKind) Native() int32 { return int32(k) }

func (k PropertyKind) String() string {
	switch k {
	case PropertyFloat32:
		return "float32"
	case PropertyFloat64:
		return "float64"
	case PropertyString:
		return "string"
	case PropertyInt32:
		return "int32"
	case PropertyBuffer:
		return "buffer"
	}
	return "invalid"
}

// TextureKind is the semantic slot a texture property belongs to
// (diffuse, normals, ...). TextureNone marks non-texture properties.
type TextureKind uint32

const (
	TextureNone         TextureKind = 0
	TextureDiffuse      TextureKind = 1
	TextureSpecular     TextureKind = 2
	TextureAmbient      TextureKind = 3
	TextureEmissive     TextureKind = 4
	TextureHeight       TextureKind = 5
	TextureNormals      TextureKind = 6
	TextureShininess    TextureKind = 7
	TextureOpacity      TextureKind = 8
	TextureDisplacement TextureKind = 9
	TextureLightmap     TextureKind = 10
	TextureReflection   TextureKind = 11
	TextureUnknown      TextureKind = 12
)

func TextureKindFromNative(v int32) (TextureKind, error) {
	if v < 0 || v > int32(TextureUnknown) {
		return TextureNone, &UnknownEnumError{Enum: "texture kind", Value: int64(v)}
	}
	return TextureKind(v), nil
}

func (k TextureKind) Native() int32 { return int32(k) }

// TextureMapping selects how texture coordinates are generated.
type TextureMapping uint32

const (
	TextureMappingUV       TextureMapping = 0
	TextureMappingSphere   TextureMapping = 1
	TextureMappingCylinder TextureMapping = 2
	TextureMappingBox      TextureMapping = 3
	TextureMappingPlane    TextureMapping = 4
	TextureMappingOther    TextureMapping = 5
)

func TextureMappingFromNative(v int32) (TextureMapping, error) {
	if v < 0 || v > int32(TextureMappingOther) {
		return TextureMappingUV, &UnknownEnumError{Enum: "texture mapping", Value: int64(v)}
	}
	return TextureMapping(v), nil
}

func (m TextureMapping) Native() int32 { return int32(m) }

// TextureOp combines a texture stage with the previous one.
type TextureOp uint32

const (
	TextureOpMultiply  TextureOp = 0
	TextureOpAdd       TextureOp = 1
	TextureOpSubtract  TextureOp = 2
	TextureOpDivide    TextureOp = 3
	TextureOpSmoothAdd TextureOp = 4
	TextureOpSignedAdd TextureOp = 5
)

func TextureOpFromNative(v int32) (TextureOp, error) {
	if v < 0 || v > int32(TextureOpSignedAdd) {
		return TextureOpMultiply, &UnknownEnumError{Enum: "texture op", Value: int64(v)}
	}
	return TextureOp(v), nil
}

func (o TextureOp) Native() int32 { return int32(o) }

// ShadingMode names the shading model a material requests.
// Discriminants start at 1.
type ShadingMode uint32

const (
	ShadingFlat         ShadingMode = 1
	ShadingGouraud      ShadingMode = 2
	ShadingPhong        ShadingMode = 3
	ShadingBlinn        ShadingMode = 4
	ShadingToon         ShadingMode = 5
	ShadingOrenNayar    ShadingMode = 6
	ShadingMinnaert     ShadingMode = 7
	ShadingCookTorrance ShadingMode = 8
	ShadingNone         ShadingMode = 9
	ShadingFresnel      ShadingMode = 10
)

func ShadingModeFromNative(v int32) (ShadingMode, error) {
	if v < int32(ShadingFlat) || v > int32(ShadingFresnel) {
		return ShadingGouraud, &UnknownEnumError{Enum: "shading mode", Value: int64(v)}
	}
	return ShadingMode(v), nil
}

func (m ShadingMode) Native() int32 { return int32(m) }

// BlendMode selects how a transparent surface composes with the
// background.
type BlendMode uint32

const (
	BlendDefault  BlendMode = 0
	BlendAdditive BlendMode = 1
)

func BlendModeFromNative(v int32) (BlendMode, error) {
	if v < 0 || v > int32(BlendAdditive) {
		return BlendDefault, &UnknownEnumError{Enum: "blend mode", Value: int64(v)}
	}
	return BlendMode(v), nil
}

func (m BlendMode) Native() int32 { return int32(m) }

// Well-known property keys, verbatim from the native convention.
const (
	MatKeyName          = "?mat.name"
	MatKeyShadingModel  = "$mat.shadingm"
	MatKeyOpacity       = "$mat.opacity"
	MatKeyShininess     = "$mat.shininess"
	MatKeyColorDiffuse  = "$clr.diffuse"
	MatKeyColorSpecular = "$clr.specular"
	MatKeyColorAmbient  = "$clr.ambient"
	MatKeyColorEmissive = "$clr.emissive"
	MatKeyTexturePath   = "$tex.file"
)

// Property is one entry of a material's property bag: a key plus a
// raw little-endian payload tagged with its kind. Semantic and Index
// identify the texture slot for $tex.* keys and are zero otherwise.
type Property struct {
	Key      FixedString
	Semantic TextureKind
	Index    uint32
	Kind     PropertyKind
	Data     []byte
}

func (p *Property) encode(w *wireWriter) {
	p.Key.encode(w)
	w.u32(uint32(p.Semantic))
	w.u32(p.Index)
	w.i32(p.Kind.Native())
	w.u32(uint32(len(p.Data)))
	w.bytes(p.Data)
}

func decodeProperty(r *wireReader) (Property, error) {
	var p Property
	key, err := decodeFixedString(r)
	if err != nil {
		return Property{}, err
	}
	p.Key = key
	p.Semantic = TextureKind(r.u32())
	p.Index = r.u32()
	rawKind := r.i32()
	if r.err != nil {
		return Property{}, r.err
	}
	kind, err := PropertyKindFromNative(rawKind)
	if err != nil {
		return Property{}, err
	}
	p.Kind = kind
	n := r.count(1)
	b := r.take(n)
	if r.err != nil {
		return Property{}, r.err
	}
	if n > 0 {
		p.Data = make([]byte, n)
		copy(p.Data, b)
	}
	return p, nil
}

// Material is an unordered property bag. Nothing about a material is
// fixed-layout on the native side either; every attribute, from the
// diffuse color to texture paths, lives in the bag under a well-known
// key.
type Material struct {
	Properties []Property
}

func (m *Material) find(key string, semantic TextureKind, index uint32) *Property {
	for i := range m.Properties {
		p := &m.Properties[i]
		if p.Semantic == semantic && p.Index == index && p.Key.String() == key {
			return p
		}
	}
	return nil
}

func (m *Material) typed(key string, semantic TextureKind, index uint32, kind PropertyKind, size int) ([]byte, error) {
	p := m.find(key, semantic, index)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPropertyNotFound, key)
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("material property %q holds %s, want %s", key, p.Kind, kind)
	}
	if len(p.Data) < size {
		return nil, fmt.Errorf("material property %q: payload is %d bytes, want %d", key, len(p.Data), size)
	}
	return p.Data, nil
}

// Float32 reads a scalar property such as MatKeyOpacity.
func (m *Material) Float32(key string, semantic TextureKind, index uint32) (float32, error) {
	b, err := m.typed(key, semantic, index, PropertyFloat32, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// Int32 reads an integer property such as MatKeyShadingModel.
func (m *Material) Int32(key string, semantic TextureKind, index uint32) (int32, error) {
	b, err := m.typed(key, semantic, index, PropertyInt32, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// Str reads a string property such as MatKeyName or a texture path.
func (m *Material) Str(key string, semantic TextureKind, index uint32) (string, error) {
	p := m.find(key, semantic, index)
	if p == nil {
		return "", fmt.Errorf("%w: %q", ErrPropertyNotFound, key)
	}
	if p.Kind != PropertyString {
		return "", fmt.Errorf("material property %q holds %s, want string", key, p.Kind)
	}
	r := wireReader{buf: p.Data}
	s, err := decodeFixedString(&r)
	if err != nil {
		return "", fmt.Errorf("material property %q: %w", key, err)
	}
	return s.String(), nil
}

// Color3 reads a three-component color property such as
// MatKeyColorDiffuse. Stored as three float32 components.
func (m *Material) Color3(key string, semantic TextureKind, index uint32) (Color3D, error) {
	b, err := m.typed(key, semantic, index, PropertyFloat32, 12)
	if err != nil {
		return Color3D{}, err
	}
	r := wireReader{buf: b}
	return decodeColor3D(&r), nil
}

// SetFloat32 adds or replaces a scalar property.
func (m *Material) SetFloat32(key string, semantic TextureKind, index uint32, v float32) error {
	var w wireWriter
	w.f32(v)
	return m.set(key, semantic, index, PropertyFloat32, w.buf)
}

// SetInt32 adds or replaces an integer property.
func (m *Material) SetInt32(key string, semantic TextureKind, index uint32, v int32) error {
	var w wireWriter
	w.i32(v)
	return m.set(key, semantic, index, PropertyInt32, w.buf)
}

// SetStr adds or replaces a string property; the value inherits the
// FixedString capacity rule.
func (m *Material) SetStr(key string, semantic TextureKind, index uint32, v string) error {
	s, err := NewFixedString(v)
	if err != nil {
		return err
	}
	var w wireWriter
	s.encode(&w)
	return m.set(key, semantic, index, PropertyString, w.buf)
}

// SetColor3 adds or replaces a three-component color property.
func (m *Material) SetColor3(key string, semantic TextureKind, index uint32, c Color3D) error {
	var w wireWriter
	c.encode(&w)
	return m.set(key, semantic, index, PropertyFloat32, w.buf)
}

func (m *Material) set(key string, semantic TextureKind, index uint32, kind PropertyKind, data []byte) error {
	if p := m.find(key, semantic, index); p != nil {
		p.Kind = kind
		p.Data = data
		return nil
	}
	k, err := NewFixedString(key)
	if err != nil {
		return err
	}
	m.Properties = append(m.Properties, Property{
		Key:      k,
		Semantic: semantic,
		Index:    index,
		Kind:     kind,
		Data:     data,
	})
	return nil
}

func (m *Material) MarshalBinary() ([]byte, error) {
	var w wireWriter
	m.encode(&w)
	return w.buf, nil
}

func (m *Material) encode(w *wireWriter) {
	w.u32(uint32(len(m.Properties)))
	for i := range m.Properties {
		m.Properties[i].encode(w)
	}
}

func (m *Material) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeMaterial(&r)
	if err != nil {
		return err
	}
	*m = out
	return nil
}

func decodeMaterial(r *wireReader) (Material, error) {
	var m Material
	n := r.count(fixedStringWireSize + 16)
	if r.err != nil {
		return Material{}, r.err
	}
	for i := 0; i < n; i++ {
		p, err := decodeProperty(r)
		if err != nil {
			return Material{}, err
		}
		m.Properties = append(m.Properties, p)
	}
	return m, nil
}

// Equal compares the property bags entry-for-entry, in order.
func (m Material) Equal(o Material) bool {
	if len(m.Properties) != len(o.Properties) {
		return false
	}
	for i := range m.Properties {
		a, b := &m.Properties[i], &o.Properties[i]
		if !a.Key.Equal(b.Key) || a.Semantic != b.Semantic ||
			a.Index != b.Index || a.Kind != b.Kind {
			return false
		}
		if string(a.Data) != string(b.Data) {
			return false
		}
	}
	return true
}
