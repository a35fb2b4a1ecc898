package aiwire

// CameraWireSize is the fixed size of a camera record: name (1028),
// three vectors (36), four scalars (16).
const CameraWireSize = fixedStringWireSize + 36 + 16

// Camera describes one camera in the scene. Like Light it is a plain
// value in the local space of the node carrying the same name; the
// name match is a scene-level invariant, not checked here.
//
// Up and LookAt are relative to Position and need not be orthogonal or
// unit length. Aspect is width over height; 0 means unknown.
type Camera struct {
	Name          FixedString // offset    0
	Position      Vector3D    // offset 1028
	Up            Vector3D    // offset 1040
	LookAt        Vector3D    // offset 1052
	HorizontalFOV float32     // offset 1064: radians, half-angle from center
	ClipPlaneNear float32     // offset 1068: > 0, never exactly 0
	ClipPlaneFar  float32     // offset 1072
	Aspect        float32     // offset 1076: 0 when unspecified
}

// NewCamera returns a camera with the native defaults: looking down
// +Z with +Y up, quarter-pi FOV and a 0.1..1000 clip range.
func NewCamera(name FixedString) Camera {
	return Camera{
		Name:          name,
		Up:            Vector3D{Y: 1},
		LookAt:        Vector3D{Z: 1},
		HorizontalFOV: 0.7853982, // pi/4
		ClipPlaneNear: 0.1,
		ClipPlaneFar:  1000,
	}
}

func (c *Camera) MarshalBinary() ([]byte, error) {
	w := wireWriter{buf: make([]byte, 0, CameraWireSize)}
	c.encode(&w)
	return w.buf, nil
}

func (c *Camera) encode(w *wireWriter) {
	c.Name.encode(w)
	c.Position.encode(w)
	c.Up.encode(w)
	c.LookAt.encode(w)
	w.f32(c.HorizontalFOV)
	w.f32(c.ClipPlaneNear)
	w.f32(c.ClipPlaneFar)
	w.f32(c.Aspect)
}

// UnmarshalBinary reads a native camera record. Camera has no
// enumeration field, so the only failure modes are truncation and an
// over-capacity name.
func (c *Camera) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeCamera(&r)
	if err != nil {
		return err
	}
	*c = out
	return nil
}

func decodeCamera(r *wireReader) (Camera, error) {
	var c Camera
	name, err := decodeFixedString(r)
	if err != nil {
		return Camera{}, err
	}
	c.Name = name
	c.Position = decodeVector3D(r)
	c.Up = decodeVector3D(r)
	c.LookAt = decodeVector3D(r)
	c.HorizontalFOV = r.f32()
	c.ClipPlaneNear = r.f32()
	c.ClipPlaneFar = r.f32()
	c.Aspect = r.f32()
	if r.err != nil {
		return Camera{}, r.err
	}
	return c, nil
}

// Equal compares field-for-field with padding-insensitive names.
func (c Camera) Equal(o Camera) bool {
	return c.Name.Equal(o.Name) &&
		c.Position == o.Position &&
		c.Up == o.Up &&
		c.LookAt == o.LookAt &&
		c.HorizontalFOV == o.HorizontalFOV &&
		c.ClipPlaneNear == o.ClipPlaneNear &&
		c.ClipPlaneFar == o.ClipPlaneFar &&
		c.Aspect == o.Aspect
}
