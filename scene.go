package aiwire

import (
	"errors"
	"fmt"
	"os"
)

// Scene flag bits, matching the native constants.
const (
	// SceneFlagIncomplete marks a scene where loading stopped early;
	// the data that is present is still valid.
	SceneFlagIncomplete = 0x1
	// SceneFlagValidated is set after a successful validation pass.
	SceneFlagValidated = 0x2
	// SceneFlagValidationWarning is set when validation found
	// non-fatal issues.
	SceneFlagValidationWarning = 0x4
	// SceneFlagNonVerboseFormat marks joined vertex data instead of
	// the verbose one-vertex-per-index layout.
	SceneFlagNonVerboseFormat = 0x8
	// SceneFlagTerrain marks a pure height-field scene.
	SceneFlagTerrain = 0x10
)

const (
	sceneMagic   = "AISC"
	sceneVersion = 1
)

// Scene is the root of one imported asset: the node hierarchy plus
// the flat entity lists the nodes refer to by index or name. It owns
// no native memory; once decoded it is an ordinary Go value graph,
// safe for concurrent readers.
type Scene struct {
	Flags      uint32
	RootNode   *Node
	Meshes     []Mesh
	Materials  []Material
	Lights     []Light
	Cameras    []Camera
	Textures   []Texture
	Animations []Animation
	Metadata   []MetadataEntry
}

// FindNode resolves a node by name, the lookup that attaches lights
// and cameras to their carrier nodes.
func (s *Scene) FindNode(name string) *Node {
	return s.RootNode.Find(name)
}

// MarshalBinary writes the scene as a sized-chunk container: a magic
// and version header, then one chunk per entity. Readers skip chunk
// ids they do not recognize.
func (s *Scene) MarshalBinary() ([]byte, error) {
	var w wireWriter
	w.bytes([]byte(sceneMagic))
	w.u32(sceneVersion)

	var chunk wireWriter
	chunk.u32(s.Flags)
	appendChunk(&w, "FLAG", chunk.buf)

	if s.RootNode != nil {
		chunk = wireWriter{}
		if err := s.RootNode.encode(&chunk); err != nil {
			return nil, err
		}
		appendChunk(&w, "NODE", chunk.buf)
	}
	for i := range s.Meshes {
		chunk = wireWriter{}
		s.Meshes[i].encode(&chunk)
		appendChunk(&w, "MESH", chunk.buf)
	}
	for i := range s.Materials {
		chunk = wireWriter{}
		s.Materials[i].encode(&chunk)
		appendChunk(&w, "MATL", chunk.buf)
	}
	for i := range s.Lights {
		chunk = wireWriter{}
		s.Lights[i].encode(&chunk)
		appendChunk(&w, "LGHT", chunk.buf)
	}
	for i := range s.Cameras {
		chunk = wireWriter{}
		s.Cameras[i].encode(&chunk)
		appendChunk(&w, "CAMR", chunk.buf)
	}
	for i := range s.Textures {
		chunk = wireWriter{}
		s.Textures[i].encode(&chunk)
		appendChunk(&w, "TEXT", chunk.buf)
	}
	for i := range s.Animations {
		chunk = wireWriter{}
		s.Animations[i].encode(&chunk)
		appendChunk(&w, "ANIM", chunk.buf)
	}
	if len(s.Metadata) > 0 {
		chunk = wireWriter{}
		if err := encodeMetadata(&chunk, s.Metadata); err != nil {
			return nil, err
		}
		appendChunk(&w, "META", chunk.buf)
	}
	return w.buf, nil
}

func appendChunk(w *wireWriter, id string, data []byte) {
	w.bytes([]byte(id))
	w.u32(uint32(len(data)))
	w.bytes(data)
}

// UnmarshalBinary reads a scene container strictly: the first entity
// that fails to translate aborts the whole decode. Use SceneDecoder
// for skip-and-continue behavior.
func (s *Scene) UnmarshalBinary(data []byte) error {
	out, err := decodeScene(data, nil)
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

// decodeScene walks the chunk list. When onEntityError is non-nil it
// is consulted for entity translation failures; returning nil drops
// the chunk and continues. Framing errors (bad magic, truncated
// chunks) always abort.
func decodeScene(data []byte, onEntityError func(id string, err error) error) (*Scene, error) {
	r := wireReader{buf: data}
	magic := r.take(4)
	if r.err != nil {
		return nil, r.err
	}
	if string(magic) != sceneMagic {
		return nil, errors.New("not a valid scene record")
	}
	version := r.u32()
	if r.err != nil {
		return nil, r.err
	}
	if version != sceneVersion {
		return nil, fmt.Errorf("unsupported scene record version %d", version)
	}

	s := &Scene{}
	for r.remaining() > 0 {
		id := r.take(4)
		if r.err != nil {
			return nil, r.err
		}
		size := r.count(1)
		body := r.take(size)
		if r.err != nil {
			return nil, r.err
		}
		if err := s.decodeChunk(string(id), body); err != nil {
			if onEntityError == nil {
				return nil, err
			}
			if err := onEntityError(string(id), err); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Scene) decodeChunk(id string, body []byte) error {
	cr := wireReader{buf: body}
	switch id {
	case "FLAG":
		s.Flags = cr.u32()
		return cr.err
	case "NODE":
		n, err := decodeNode(&cr, 0)
		if err != nil {
			return err
		}
		s.RootNode = n
	case "MESH":
		m, err := decodeMesh(&cr)
		if err != nil {
			return err
		}
		s.Meshes = append(s.Meshes, m)
	case "MATL":
		m, err := decodeMaterial(&cr)
		if err != nil {
			return err
		}
		s.Materials = append(s.Materials, m)
	case "LGHT":
		l, err := decodeLight(&cr)
		if err != nil {
			return err
		}
		s.Lights = append(s.Lights, l)
	case "CAMR":
		c, err := decodeCamera(&cr)
		if err != nil {
			return err
		}
		s.Cameras = append(s.Cameras, c)
	case "TEXT":
		t, err := decodeTexture(&cr)
		if err != nil {
			return err
		}
		s.Textures = append(s.Textures, t)
	case "ANIM":
		a, err := decodeAnimation(&cr)
		if err != nil {
			return err
		}
		s.Animations = append(s.Animations, a)
	case "META":
		md, err := decodeMetadata(&cr)
		if err != nil {
			return err
		}
		s.Metadata = md
	default:
		// Unknown chunk id: skip, for forward compatibility.
	}
	return nil
}

// SaveScene writes a scene container to a file.
func SaveScene(path string, s *Scene) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadScene reads a scene container from a file, strictly.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &s, nil
}

// Equal compares two scenes entity-for-entity.
func (s *Scene) Equal(o *Scene) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Flags != o.Flags || !s.RootNode.Equal(o.RootNode) {
		return false
	}
	if len(s.Meshes) != len(o.Meshes) || len(s.Materials) != len(o.Materials) ||
		len(s.Lights) != len(o.Lights) || len(s.Cameras) != len(o.Cameras) ||
		len(s.Textures) != len(o.Textures) || len(s.Animations) != len(o.Animations) {
		return false
	}
	for i := range s.Meshes {
		if !s.Meshes[i].Equal(o.Meshes[i]) {
			return false
		}
	}
	for i := range s.Materials {
		if !s.Materials[i].Equal(o.Materials[i]) {
			return false
		}
	}
	for i := range s.Lights {
		if !s.Lights[i].Equal(o.Lights[i]) {
			return false
		}
	}
	for i := range s.Cameras {
		if !s.Cameras[i].Equal(o.Cameras[i]) {
			return false
		}
	}
	for i := range s.Textures {
		if !s.Textures[i].Equal(o.Textures[i]) {
			return false
		}
	}
	for i := range s.Animations {
		if !s.Animations[i].Equal(o.Animations[i]) {
			return false
		}
	}
	return metadataEqual(s.Metadata, o.Metadata)
}
