package aiwire

// MaxStringLen is the capacity of the fixed string buffer used for
// entity names and material keys, matching the native MAXLEN constant.
const MaxStringLen = 1024

// fixedStringWireSize is the explicit length field plus the full
// buffer; the buffer always travels whole, used or not.
const fixedStringWireSize = 4 + MaxStringLen

// FixedString is bounded-length text stored inline: an explicit byte
// length plus a fixed-capacity buffer, mirroring the native fixed-size
// string convention. The logical content is Data[:Length]; bytes past
// Length are padding whose content is unspecified and must never be
// interpreted. Comparisons therefore go through Equal, not ==.
type FixedString struct {
	Length uint32
	Data   [MaxStringLen]byte
}

// NewFixedString builds a FixedString from text. Input longer than
// MaxStringLen fails with TooLongError; nothing is truncated silently.
func NewFixedString(text string) (FixedString, error) {
	var s FixedString
	if err := s.Set(text); err != nil {
		return FixedString{}, err
	}
	return s, nil
}

// MustFixedString is NewFixedString for compile-time-known text; it
// panics on overflow.
func MustFixedString(text string) FixedString {
	s, err := NewFixedString(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Set replaces the content. Fails with TooLongError if text exceeds
// MaxStringLen; on failure the receiver is unchanged.
func (s *FixedString) Set(text string) error {
	if len(text) > MaxStringLen {
		return &TooLongError{Length: len(text), Max: MaxStringLen}
	}
	s.Length = uint32(len(text))
	copy(s.Data[:], text)
	// Zero the tail so encode output is deterministic. Readers must
	// still not rely on padding content.
	for i := len(text); i < MaxStringLen; i++ {
		s.Data[i] = 0
	}
	return nil
}

func (s FixedString) String() string {
	n := s.Length
	if n > MaxStringLen {
		n = MaxStringLen
	}
	return string(s.Data[:n])
}

// Equal compares logical content only, ignoring padding bytes.
func (s FixedString) Equal(o FixedString) bool {
	return s.String() == o.String()
}

func (s FixedString) encode(w *wireWriter) {
	w.u32(s.Length)
	w.bytes(s.Data[:])
}

// decodeFixedString reads a length field and the full buffer. A length
// exceeding the buffer capacity is malformed input and surfaces as
// TooLongError.
func decodeFixedString(r *wireReader) (FixedString, error) {
	var s FixedString
	s.Length = r.u32()
	b := r.take(MaxStringLen)
	if r.err != nil {
		return FixedString{}, r.err
	}
	copy(s.Data[:], b)
	if s.Length > MaxStringLen {
		return FixedString{}, &TooLongError{Length: int(s.Length), Max: MaxStringLen}
	}
	return s, nil
}
