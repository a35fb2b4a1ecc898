package aiwire

import (
	"sync"
	"testing"
)

func TestSceneRegistry(t *testing.T) {
	reg := NewSceneRegistry(nil)
	s1 := &Scene{Flags: SceneFlagValidated}
	s2 := &Scene{}

	id1 := reg.Add(s1)
	id2 := reg.Add(s2)
	if id1 == id2 {
		t.Fatal("handles must be unique")
	}
	if reg.Len() != 2 {
		t.Errorf("len = %d", reg.Len())
	}

	got, ok := reg.Get(id1)
	if !ok || got != s1 {
		t.Error("lookup returned the wrong scene")
	}

	reg.Remove(id1)
	if _, ok := reg.Get(id1); ok {
		t.Error("removed handle still resolves")
	}
	reg.Remove(id1) // no-op
	if reg.Len() != 1 {
		t.Errorf("len = %d after removal", reg.Len())
	}
}

func TestSceneRegistryConcurrent(t *testing.T) {
	reg := NewSceneRegistry(NewNopLogger())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := reg.Add(&Scene{})
			if _, ok := reg.Get(id); !ok {
				t.Error("own handle not resolvable")
			}
		}()
	}
	wg.Wait()
	if reg.Len() != 16 {
		t.Errorf("len = %d", reg.Len())
	}
}
