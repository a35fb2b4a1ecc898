package aiwire

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func sampleHierarchy(t *testing.T) *Node {
	t.Helper()
	root := NewNode(MustFixedString("RootNode"))
	root.MeshIndices = []uint32{0}

	sun := NewNode(MustFixedString("Sun"))
	sun.Transformation = Matrix4x4FromMgl(mgl32.Translate3D(0, 100, 0))

	rig := NewNode(MustFixedString("rig"))
	hand := NewNode(MustFixedString("hand.L"))
	hand.MeshIndices = []uint32{1, 2}
	rig.Children = append(rig.Children, hand)

	md, err := MetadataEntryOf("source", "demo.fbx")
	if err != nil {
		t.Fatal(err)
	}
	root.Metadata = append(root.Metadata, md)
	root.Children = append(root.Children, sun, rig)
	return root
}

func TestNodeWireRoundTrip(t *testing.T) {
	root := sampleHierarchy(t)
	raw, err := root.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back Node
	if err := back.UnmarshalBinary(raw); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(root) {
		t.Error("decoded hierarchy differs from original")
	}
}

func TestNodeFind(t *testing.T) {
	root := sampleHierarchy(t)

	// The light-name contract: a light named "Sun" resolves to the
	// node that carries its transform.
	sun := root.Find("Sun")
	if sun == nil {
		t.Fatal("Sun not found")
	}
	if got := sun.Transformation.Mgl(); got != mgl32.Translate3D(0, 100, 0) {
		t.Errorf("Sun transform = %v", got)
	}

	if root.Find("hand.L") == nil {
		t.Error("nested node not found")
	}
	if root.Find("missing") != nil {
		t.Error("lookup of an absent name should return nil")
	}
}

func TestNodeDepthLimit(t *testing.T) {
	root := NewNode(MustFixedString("n0"))
	cur := root
	for i := 0; i < maxNodeDepth+5; i++ {
		child := NewNode(MustFixedString("n"))
		cur.Children = []*Node{child}
		cur = child
	}
	raw, err := root.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back Node
	if err := back.UnmarshalBinary(raw); err == nil {
		t.Error("decode should refuse an absurdly deep hierarchy")
	}
}
