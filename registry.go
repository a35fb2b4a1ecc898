package aiwire

import (
	"sync"

	"github.com/google/uuid"
)

// SceneId is an opaque handle to a scene held by a SceneRegistry.
type SceneId string

// SceneRegistry keeps decoded scenes addressable by handle, so
// application code can pass small ids around instead of scene
// pointers. Scenes are immutable from the registry's perspective;
// the registry itself is safe for concurrent use.
type SceneRegistry struct {
	mu     sync.RWMutex
	scenes map[SceneId]*Scene
	logger Logger
}

func NewSceneRegistry(logger Logger) *SceneRegistry {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &SceneRegistry{
		scenes: make(map[SceneId]*Scene),
		logger: logger,
	}
}

// Add stores a scene under a fresh handle.
func (reg *SceneRegistry) Add(s *Scene) SceneId {
	id := SceneId(uuid.NewString())
	reg.mu.Lock()
	reg.scenes[id] = s
	reg.mu.Unlock()
	reg.logger.Debugf("registered scene %s (%d meshes, %d lights)", id, len(s.Meshes), len(s.Lights))
	return id
}

// Get returns the scene for a handle, if still registered.
func (reg *SceneRegistry) Get(id SceneId) (*Scene, bool) {
	reg.mu.RLock()
	s, ok := reg.scenes[id]
	reg.mu.RUnlock()
	return s, ok
}

// Remove drops a handle. Removing an unknown handle is a no-op.
func (reg *SceneRegistry) Remove(id SceneId) {
	reg.mu.Lock()
	delete(reg.scenes, id)
	reg.mu.Unlock()
}

// Len reports the number of registered scenes.
func (reg *SceneRegistry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.scenes)
}
