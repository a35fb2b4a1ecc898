package aiwire

// AnimBehavior says how a channel extrapolates outside its key range.
// Discriminants match the native enumeration.
type AnimBehavior uint32

const (
	// AnimBehaviorDefault takes the node's transformation without
	// animation.
	AnimBehaviorDefault AnimBehavior = 0
	// AnimBehaviorConstant holds the nearest key.
	AnimBehaviorConstant AnimBehavior = 1
	// AnimBehaviorLinear extrapolates the two nearest keys.
	AnimBehaviorLinear AnimBehavior = 2
	// AnimBehaviorRepeat wraps time into the key range.
	AnimBehaviorRepeat AnimBehavior = 3
)

func AnimBehaviorFromNative(v int32) (AnimBehavior, error) {
	if v < 0 || v > int32(AnimBehaviorRepeat) {
		return AnimBehaviorDefault, &UnknownEnumError{Enum: "animation behavior", Value: int64(v)}
	}
	return AnimBehavior(v), nil
}

func (b AnimBehavior) Native() int32 { return int32(b) }

// VectorKey is one translation or scaling sample. Time is in ticks.
type VectorKey struct {
	Time  float64
	Value Vector3D
}

// QuatKey is one rotation sample. Time is in ticks.
type QuatKey struct {
	Time  float64
	Value Quaternion
}

// NodeChannel animates one node, addressed by name, with independent
// position, rotation and scaling key tracks. Keys are ordered by time
// by the producer; the codec does not reorder.
type NodeChannel struct {
	NodeName     FixedString
	PositionKeys []VectorKey
	RotationKeys []QuatKey
	ScalingKeys  []VectorKey
	PreState     AnimBehavior
	PostState    AnimBehavior
}

// Animation is one named clip. Duration is in ticks; TicksPerSecond
// is 0 when the source format did not specify a rate.
type Animation struct {
	Name           FixedString
	Duration       float64
	TicksPerSecond float64
	Channels       []NodeChannel
}

func (a *Animation) MarshalBinary() ([]byte, error) {
	var w wireWriter
	a.encode(&w)
	return w.buf, nil
}

func (a *Animation) encode(w *wireWriter) {
	a.Name.encode(w)
	w.f64(a.Duration)
	w.f64(a.TicksPerSecond)
	w.u32(uint32(len(a.Channels)))
	for i := range a.Channels {
		c := &a.Channels[i]
		c.NodeName.encode(w)
		w.i32(c.PreState.Native())
		w.i32(c.PostState.Native())
		encodeVectorKeys(w, c.PositionKeys)
		w.u32(uint32(len(c.RotationKeys)))
		for _, k := range c.RotationKeys {
			w.f64(k.Time)
			k.Value.encode(w)
		}
		encodeVectorKeys(w, c.ScalingKeys)
	}
}

func encodeVectorKeys(w *wireWriter, keys []VectorKey) {
	w.u32(uint32(len(keys)))
	for _, k := range keys {
		w.f64(k.Time)
		k.Value.encode(w)
	}
}

func decodeVectorKeys(r *wireReader) []VectorKey {
	n := r.count(20)
	if r.err != nil || n == 0 {
		return nil
	}
	keys := make([]VectorKey, n)
	for i := range keys {
		keys[i].Time = r.f64()
		keys[i].Value = decodeVector3D(r)
	}
	return keys
}

func (a *Animation) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeAnimation(&r)
	if err != nil {
		return err
	}
	*a = out
	return nil
}

func decodeAnimation(r *wireReader) (Animation, error) {
	var a Animation
	name, err := decodeFixedString(r)
	if err != nil {
		return Animation{}, err
	}
	a.Name = name
	a.Duration = r.f64()
	a.TicksPerSecond = r.f64()
	chCount := r.count(fixedStringWireSize + 20)
	if r.err != nil {
		return Animation{}, r.err
	}
	for i := 0; i < chCount; i++ {
		var c NodeChannel
		c.NodeName, err = decodeFixedString(r)
		if err != nil {
			return Animation{}, err
		}
		rawPre := r.i32()
		rawPost := r.i32()
		if r.err != nil {
			return Animation{}, r.err
		}
		if c.PreState, err = AnimBehaviorFromNative(rawPre); err != nil {
			return Animation{}, err
		}
		if c.PostState, err = AnimBehaviorFromNative(rawPost); err != nil {
			return Animation{}, err
		}
		c.PositionKeys = decodeVectorKeys(r)
		n := r.count(24)
		if r.err != nil {
			return Animation{}, r.err
		}
		if n > 0 {
			c.RotationKeys = make([]QuatKey, n)
			for j := range c.RotationKeys {
				c.RotationKeys[j].Time = r.f64()
				c.RotationKeys[j].Value = decodeQuaternion(r)
			}
		}
		c.ScalingKeys = decodeVectorKeys(r)
		a.Channels = append(a.Channels, c)
	}
	if r.err != nil {
		return Animation{}, r.err
	}
	return a, nil
}

// Equal compares the clip and every channel key-for-key.
func (a Animation) Equal(o Animation) bool {
	if !a.Name.Equal(o.Name) || a.Duration != o.Duration ||
		a.TicksPerSecond != o.TicksPerSecond || len(a.Channels) != len(o.Channels) {
		return false
	}
	for i := range a.Channels {
		x, y := &a.Channels[i], &o.Channels[i]
		if !x.NodeName.Equal(y.NodeName) || x.PreState != y.PreState || x.PostState != y.PostState {
			return false
		}
		if !vectorKeysEqual(x.PositionKeys, y.PositionKeys) ||
			!vectorKeysEqual(x.ScalingKeys, y.ScalingKeys) ||
			len(x.RotationKeys) != len(y.RotationKeys) {
			return false
		}
		for j := range x.RotationKeys {
			if x.RotationKeys[j] != y.RotationKeys[j] {
				return false
			}
		}
	}
	return true
}

func vectorKeysEqual(a, b []VectorKey) bool {
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
