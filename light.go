package aiwire

// LightKind identifies the kind of light source. Discriminants match
// the native enumeration exactly and travel as a 32-bit signed integer
// on the wire.
type LightKind uint32

const (
	// LightKindUndefined is not a valid kind for a stored light; its
	// presence signals a malformed or unset record.
	LightKindUndefined LightKind = 0

	// LightKindDirectional emits parallel rays along Direction from
	// infinitely far away. Position is meaningless.
	LightKindDirectional LightKind = 1

	// LightKindPoint radiates in all directions from Position.
	// Direction is meaningless.
	LightKindPoint LightKind = 2

	// LightKindSpot emits a cone from Position along Direction,
	// bounded by the inner and outer cone angles.
	LightKindSpot LightKind = 3
)

// FullSphereAngle is the native convention for the cone angles of a
// point light: 2*pi, "the whole sphere", rather than a not-applicable
// sentinel. Preserved as-is to keep records bit round-trippable.
const FullSphereAngle = float32(6.283185307179586)

// LightKindFromNative translates the native integer discriminant.
// Any value outside the defined set fails with UnknownEnumError; it is
// never coerced into a nearby variant.
func LightKindFromNative(v int32) (LightKind, error) {
	switch LightKind(v) {
	case LightKindUndefined, LightKindDirectional, LightKindPoint, LightKindSpot:
		return LightKind(v), nil
	}
	return LightKindUndefined, &UnknownEnumError{Enum: "light kind", Value: int64(v)}
}

// Native returns the integer form written back across the boundary.
// Total: every LightKind has exactly one native representation.
func (k LightKind) Native() int32 {
	return int32(k)
}

func (k LightKind) String() string {
	switch k {
	case LightKindUndefined:
		return "undefined"
	case LightKindDirectional:
		return "directional"
	case LightKindPoint:
		return "point"
	case LightKindSpot:
		return "spot"
	}
	return "invalid"
}

// LightWireSize is the fixed size of a light record: name (1028),
// kind (4), position and direction (12 each), attenuation (12),
// three colors (36), cone angles (8).
const LightWireSize = fixedStringWireSize + 4 + 12 + 12 + 12 + 36 + 8

// Light describes one light source. It is a plain value: no references
// into native memory survive translation, so a Light may be copied,
// stored and shared freely once constructed.
//
// Which fields are meaningful depends on Kind; translation never
// checks this, it only transports:
//
//   - Position: point and spot only. Unspecified (not necessarily
//     zero) for directional lights.
//   - Direction: directional and spot only; not guaranteed unit
//     length. Unspecified for point lights.
//   - Attenuation*: point and spot only. Intensity at distance d is
//     1 / (Constant + Linear*d + Quadratic*d*d).
//   - Color*: always meaningful.
//   - AngleInnerCone, AngleOuterCone: radians, spot only, where
//     outer >= inner must hold. FullSphereAngle for point lights,
//     unspecified for directional.
//
// Name must match a node in the owning scene graph; that node's
// transform places the light, and Position/Direction are relative to
// it. The match is a scene-level invariant this type cannot check.
type Light struct {
	Name                 FixedString // offset    0: node name, 1028 bytes
	Kind                 LightKind   // offset 1028: int32 discriminant
	Position             Vector3D    // offset 1032
	Direction            Vector3D    // offset 1044
	AttenuationConstant  float32     // offset 1056
	AttenuationLinear    float32     // offset 1060
	AttenuationQuadratic float32     // offset 1064
	ColorDiffuse         Color3D     // offset 1068
	ColorSpecular        Color3D     // offset 1080
	ColorAmbient         Color3D     // offset 1092
	AngleInnerCone       float32     // offset 1104
	AngleOuterCone       float32     // offset 1108
}

// MarshalBinary writes the native record. It always succeeds: every
// field of a Light has exactly one wire representation.
func (l *Light) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, 0, LightWireSize)}
	l.encode(&w)
	return w.buf, nil
}

func (l *Light) encode(w *wireWriter) {
	l.Name.encode(w)
	w.i32(l.Kind.Native())
	l.Position.encode(w)
	l.Direction.encode(w)
	w.f32(l.AttenuationConstant)
	w.f32(l.AttenuationLinear)
	w.f32(l.AttenuationQuadratic)
	l.ColorDiffuse.encode(w)
	l.ColorSpecular.encode(w)
	l.ColorAmbient.encode(w)
	w.f32(l.AngleInnerCone)
	w.f32(l.AngleOuterCone)
}

// UnmarshalBinary reads a native record. The only failure modes are a
// truncated buffer, a name longer than the fixed capacity, and an
// unrecognized kind discriminant; geometry and attenuation fields are
// copied verbatim with no range checks, since their validity depends
// on Kind and is the reader's contract (see the type comment).
// On failure the receiver is unchanged.
func (l *Light) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeLight(&r)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func decodeLight(r *wireReader) (Light, error) {
	var l Light
	name, err := decodeFixedString(r)
	if err != nil {
		return Light{}, err
	}
	l.Name = name
	rawKind := r.i32()
	if r.err != nil {
		return Light{}, r.err
	}
	kind, err := LightKindFromNative(rawKind)
	if err != nil {
		return Light{}, err
	}
	l.Kind = kind
	l.Position = decodeVector3D(r)
	l.Direction = decodeVector3D(r)
	l.AttenuationConstant = r.f32()
	l.AttenuationLinear = r.f32()
	l.AttenuationQuadratic = r.f32()
	l.ColorDiffuse = decodeColor3D(r)
	l.ColorSpecular = decodeColor3D(r)
	l.ColorAmbient = decodeColor3D(r)
	l.AngleInnerCone = r.f32()
	l.AngleOuterCone = r.f32()
	if r.err != nil {
		return Light{}, r.err
	}
	return l, nil
}

// Equal compares field-for-field, with padding-insensitive name
// comparison. Fields the Kind marks as unspecified still participate;
// gate on Kind first when comparing lights of different kinds.
func (l Light) Equal(o Light) bool {
	return l.Name.Equal(o.Name) &&
		l.Kind == o.Kind &&
		l.Position == o.Position &&
		l.Direction == o.Direction &&
		l.AttenuationConstant == o.AttenuationConstant &&
		l.AttenuationLinear == o.AttenuationLinear &&
		l.AttenuationQuadratic == o.AttenuationQuadratic &&
		l.ColorDiffuse == o.ColorDiffuse &&
		l.ColorSpecular == o.ColorSpecular &&
		l.ColorAmbient == o.ColorAmbient &&
		l.AngleInnerCone == o.AngleInnerCone &&
		l.AngleOuterCone == o.AngleOuterCone
}
