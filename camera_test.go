package aiwire

import (
	"bytes"
	"errors"
	"testing"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(MustFixedString("main"))
	if c.Up != (Vector3D{Y: 1}) || c.LookAt != (Vector3D{Z: 1}) {
		t.Errorf("unexpected default axes: up=%+v lookAt=%+v", c.Up, c.LookAt)
	}
	if c.ClipPlaneNear <= 0 {
		t.Error("near plane must be positive")
	}
	if c.Aspect != 0 {
		t.Error("aspect defaults to unspecified")
	}
}

func TestCameraWireRoundTrip(t *testing.T) {
	c := NewCamera(MustFixedString("main"))
	c.Position = Vector3D{X: 0, Y: 3, Z: -10}
	c.Aspect = 16.0 / 9.0

	raw, err := c.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != CameraWireSize {
		t.Fatalf("record is %d bytes, want %d", len(raw), CameraWireSize)
	}

	var back Camera
	if err := back.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(c) {
		t.Error("decoded camera differs from original")
	}

	raw2, _ := back.MarshalBinary()
	if !bytes.Equal(raw, raw2) {
		t.Error("re-encoded record differs from original bytes")
	}
}

func TestCameraTruncated(t *testing.T) {
	c := NewCamera(MustFixedString("main"))
	raw, _ := c.MarshalBinary()
	var back Camera
	if err := back.UnmarshalBinary(raw[:100]); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
