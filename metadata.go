package aiwire

import "fmt"

// MetadataKind tags the payload type of one metadata entry.
// Discriminants match the native enumeration.
type MetadataKind uint32

const (
	MetadataBool     MetadataKind = 0
	MetadataInt32    MetadataKind = 1
	MetadataUInt64   MetadataKind = 2
	MetadataFloat32  MetadataKind = 3
	MetadataFloat64  MetadataKind = 4
	MetadataString   MetadataKind = 5
	MetadataVector3D MetadataKind = 6
)

func MetadataKindFromNative(v int32) (MetadataKind, error) {
	if v < 0 || v > int32(MetadataVector3D) {
		return MetadataBool, &UnknownEnumError{Enum: "metadata kind", Value: int64(v)}
	}
	return MetadataKind(v), nil
}

func (k MetadataKind) Native() int32 { return int32(k) }

// MetadataEntry is one key/value pair attached to a node or scene.
// Value's dynamic type is fixed by Kind: bool, int32, uint64, float32,
// float64, FixedString or Vector3D.
type MetadataEntry struct {
	Key   FixedString
	Kind  MetadataKind
	Value any
}

// MetadataEntryOf builds an entry, inferring Kind from the value's
// type. Plain strings are converted to FixedString and inherit its
// capacity rule.
func MetadataEntryOf(key string, value any) (MetadataEntry, error) {
	k, err := NewFixedString(key)
	if err != nil {
		return MetadataEntry{}, err
	}
	e := MetadataEntry{Key: k}
	switch v := value.(type) {
	case bool:
		e.Kind, e.Value = MetadataBool, v
	case int32:
		e.Kind, e.Value = MetadataInt32, v
	case uint64:
		e.Kind, e.Value = MetadataUInt64, v
	case float32:
		e.Kind, e.Value = MetadataFloat32, v
	case float64:
		e.Kind, e.Value = MetadataFloat64, v
	case string:
		s, err := NewFixedString(v)
		if err != nil {
			return MetadataEntry{}, err
		}
		e.Kind, e.Value = MetadataString, s
	case FixedString:
		e.Kind, e.Value = MetadataString, v
	case Vector3D:
		e.Kind, e.Value = MetadataVector3D, v
	default:
		return MetadataEntry{}, fmt.Errorf("metadata %q: unsupported value type %T", key, value)
	}
	return e, nil
}

func (e *MetadataEntry) encode(w *wireWriter) error {
	e.Key.encode(w)
	w.i32(e.Kind.Native())
	switch e.Kind {
	case MetadataBool:
		v, ok := e.Value.(bool)
		if !ok {
			return metadataTypeError(e, "bool")
		}
		if v {
			w.u8(1)
		} else {
			w.u8(0)
		}
	case MetadataInt32:
		v, ok := e.Value.(int32)
		if !ok {
			return metadataTypeError(e, "int32")
		}
		w.i32(v)
	case MetadataUInt64:
		v, ok := e.Value.(uint64)
		if !ok {
			return metadataTypeError(e, "uint64")
		}
		w.u64(v)
	case MetadataFloat32:
		v, ok := e.Value.(float32)
		if !ok {
			return metadataTypeError(e, "float32")
		}
		w.f32(v)
	case MetadataFloat64:
		v, ok := e.Value.(float64)
		if !ok {
			return metadataTypeError(e, "float64")
		}
		w.f64(v)
	case MetadataString:
		v, ok := e.Value.(FixedString)
		if !ok {
			return metadataTypeError(e, "FixedString")
		}
		v.encode(w)
	case MetadataVector3D:
		v, ok := e.Value.(Vector3D)
		if !ok {
			return metadataTypeError(e, "Vector3D")
		}
		v.encode(w)
	default:
		return &UnknownEnumError{Enum: "metadata kind", Value: int64(e.Kind)}
	}
	return nil
}

func metadataTypeError(e *MetadataEntry, want string) error {
	return fmt.Errorf("metadata %q: value is %T, kind requires %s", e.Key.String(), e.Value, want)
}

func decodeMetadataEntry(r *wireReader) (MetadataEntry, error) {
	var e MetadataEntry
	key, err := decodeFixedString(r)
	if err != nil {
		return MetadataEntry{}, err
	}
	e.Key = key
	rawKind := r.i32()
	if r.err != nil {
		return MetadataEntry{}, r.err
	}
	kind, err := MetadataKindFromNative(rawKind)
	if err != nil {
		return MetadataEntry{}, err
	}
	e.Kind = kind
	switch kind {
	case MetadataBool:
		e.Value = r.u8() != 0
	case MetadataInt32:
		e.Value = r.i32()
	case MetadataUInt64:
		e.Value = r.u64()
	case MetadataFloat32:
		e.Value = r.f32()
	case MetadataFloat64:
		e.Value = r.f64()
	case MetadataString:
		s, err := decodeFixedString(r)
		if err != nil {
			return MetadataEntry{}, err
		}
		e.Value = s
	case MetadataVector3D:
		e.Value = decodeVector3D(r)
	}
	if r.err != nil {
		return MetadataEntry{}, r.err
	}
	return e, nil
}

func encodeMetadata(w *wireWriter, entries []MetadataEntry) error {
	w.u32(uint32(len(entries)))
	for i := range entries {
		if err := entries[i].encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeMetadata(r *wireReader) ([]MetadataEntry, error) {
	n := r.count(fixedStringWireSize + 5)
	if r.err != nil {
		return nil, r.err
	}
	if n == 0 {
		return nil, nil
	}
	entries := make([]MetadataEntry, 0, n)
	for i := 0; i < n; i++ {
		e, err := decodeMetadataEntry(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Equal compares key content, kind and value. FixedString values
// compare padding-insensitively like everything else in this package.
func (e MetadataEntry) Equal(o MetadataEntry) bool {
	if !e.Key.Equal(o.Key) || e.Kind != o.Kind {
		return false
	}
	if a, ok := e.Value.(FixedString); ok {
		b, ok := o.Value.(FixedString)
		return ok && a.Equal(b)
	}
	return e.Value == o.Value
}

func metadataEqual(a, b []MetadataEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
