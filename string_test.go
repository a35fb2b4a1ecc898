package aiwire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFixedStringCapacity(t *testing.T) {
	atMax := strings.Repeat("a", MaxStringLen)
	s, err := NewFixedString(atMax)
	if err != nil {
		t.Fatalf("text at the maximum should construct: %v", err)
	}
	if s.String() != atMax {
		t.Errorf("content does not round trip at max length")
	}

	_, err = NewFixedString(atMax + "b")
	if err == nil {
		t.Fatal("text one byte over the maximum should fail")
	}
	var tooLong *TooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected TooLongError, got %T", err)
	}
	if tooLong.Length != MaxStringLen+1 || tooLong.Max != MaxStringLen {
		t.Errorf("error carries %d/%d, want %d/%d", tooLong.Length, tooLong.Max, MaxStringLen+1, MaxStringLen)
	}
}

func TestFixedStringWireRoundTrip(t *testing.T) {
	s := MustFixedString("spot.Target")
	var w wireWriter
	s.encode(&w)
	if len(w.buf) != fixedStringWireSize {
		t.Fatalf("wire form is %d bytes, want %d", len(w.buf), fixedStringWireSize)
	}
	// Length portion of the buffer must equal the input bytes.
	if !bytes.Equal(w.buf[4:4+len("spot.Target")], []byte("spot.Target")) {
		t.Errorf("buffer content differs from input")
	}

	r := wireReader{buf: w.buf}
	back, err := decodeFixedString(&r)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(s) || back.String() != "spot.Target" {
		t.Errorf("decoded %q", back.String())
	}
}

// Padding bytes are not meaningful: two strings with the same logical
// content but different tail garbage compare equal.
func TestFixedStringPaddingInsensitive(t *testing.T) {
	a := MustFixedString("node")
	b := MustFixedString("node")
	b.Data[100] = 0xFF
	if !a.Equal(b) {
		t.Error("padding difference should not affect equality")
	}
}

func TestFixedStringRejectsCorruptLength(t *testing.T) {
	s := MustFixedString("x")
	var w wireWriter
	s.encode(&w)
	// Overwrite the length field with an impossible value.
	w.buf[0], w.buf[1], w.buf[2], w.buf[3] = 0xFF, 0xFF, 0, 0

	r := wireReader{buf: w.buf}
	_, err := decodeFixedString(&r)
	var tooLong *TooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected TooLongError, got %v", err)
	}
}

func TestFixedStringSetReplaces(t *testing.T) {
	s := MustFixedString("first-name-that-is-longer")
	if err := s.Set("no"); err != nil {
		t.Fatal(err)
	}
	if s.String() != "no" {
		t.Errorf("got %q", s.String())
	}
	if s.Length != 2 {
		t.Errorf("length = %d", s.Length)
	}
}
