package aiwire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brassMaterial(t *testing.T) Material {
	t.Helper()
	var m Material
	require.NoError(t, m.SetStr(MatKeyName, TextureNone, 0, "brass"))
	require.NoError(t, m.SetColor3(MatKeyColorDiffuse, TextureNone, 0, Color3D{R: 0.78, G: 0.57, B: 0.11}))
	require.NoError(t, m.SetFloat32(MatKeyShininess, TextureNone, 0, 27.9))
	require.NoError(t, m.SetInt32(MatKeyShadingModel, TextureNone, 0, ShadingPhong.Native()))
	require.NoError(t, m.SetStr(MatKeyTexturePath, TextureDiffuse, 0, "brass_albedo.png"))
	return m
}

func TestMaterialTypedAccess(t *testing.T) {
	m := brassMaterial(t)

	name, err := m.Str(MatKeyName, TextureNone, 0)
	require.NoError(t, err)
	assert.Equal(t, "brass", name)

	diffuse, err := m.Color3(MatKeyColorDiffuse, TextureNone, 0)
	require.NoError(t, err)
	assert.Equal(t, Color3D{R: 0.78, G: 0.57, B: 0.11}, diffuse)

	shininess, err := m.Float32(MatKeyShininess, TextureNone, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(27.9), shininess)

	shading, err := m.Int32(MatKeyShadingModel, TextureNone, 0)
	require.NoError(t, err)
	mode, err := ShadingModeFromNative(shading)
	require.NoError(t, err)
	assert.Equal(t, ShadingPhong, mode)

	path, err := m.Str(MatKeyTexturePath, TextureDiffuse, 0)
	require.NoError(t, err)
	assert.Equal(t, "brass_albedo.png", path)
}

func TestMaterialMissingAndWrongKind(t *testing.T) {
	m := brassMaterial(t)

	_, err := m.Float32(MatKeyOpacity, TextureNone, 0)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	// A texture path under a different semantic is a different slot.
	_, err = m.Str(MatKeyTexturePath, TextureNormals, 0)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	// Name is a string; reading it as a scalar is a kind error.
	_, err = m.Float32(MatKeyName, TextureNone, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPropertyNotFound)
}

func TestMaterialSetReplaces(t *testing.T) {
	m := brassMaterial(t)
	n := len(m.Properties)
	require.NoError(t, m.SetFloat32(MatKeyShininess, TextureNone, 0, 64))
	assert.Len(t, m.Properties, n, "replacing must not grow the bag")
	v, err := m.Float32(MatKeyShininess, TextureNone, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(64), v)
}

func TestMaterialWireRoundTrip(t *testing.T) {
	m := brassMaterial(t)
	raw, err := m.MarshalBinary()
	require.NoError(t, err)

	var back Material
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.True(t, back.Equal(m))

	raw2, err := back.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, raw2)
}

func TestMaterialRejectsUnknownPropertyKind(t *testing.T) {
	m := brassMaterial(t)
	m.Properties[0].Kind = PropertyKind(77)
	raw, err := m.MarshalBinary()
	require.NoError(t, err) // encode transports what it is given

	var back Material
	err = back.UnmarshalBinary(raw)
	var unknown *UnknownEnumError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, int64(77), unknown.Value)
}

func TestMaterialEnumRejections(t *testing.T) {
	if _, err := ShadingModeFromNative(0); err == nil {
		t.Error("shading mode 0 is not defined")
	}
	if _, err := ShadingModeFromNative(11); err == nil {
		t.Error("shading mode 11 is not defined")
	}
	if _, err := TextureKindFromNative(13); err == nil {
		t.Error("texture kind 13 is not defined")
	}
	if _, err := TextureMappingFromNative(-2); err == nil {
		t.Error("negative texture mapping is not defined")
	}
	if _, err := TextureOpFromNative(6); err == nil {
		t.Error("texture op 6 is not defined")
	}
	if _, err := BlendModeFromNative(2); err == nil {
		t.Error("blend mode 2 is not defined")
	}
	if _, err := PropertyKindFromNative(0); err == nil {
		t.Error("property kind 0 is not defined")
	}
}
