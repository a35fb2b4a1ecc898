package aiwire

import "fmt"

// maxNodeDepth bounds hierarchy recursion while decoding, so a
// corrupt record cannot blow the stack.
const maxNodeDepth = 512

// Node is one element of the scene hierarchy. Transformation is
// relative to the parent; mesh indices point into the owning scene's
// mesh list. Lights and cameras attach to nodes by name.
type Node struct {
	Name           FixedString
	Transformation Matrix4x4
	MeshIndices    []uint32
	Metadata       []MetadataEntry
	Children       []*Node
}

// NewNode returns a node with the identity transformation.
func NewNode(name FixedString) *Node {
	return &Node{Name: name, Transformation: IdentityMatrix4x4()}
}

// Find walks the hierarchy depth-first and returns the first node
// whose name matches, or nil. This is the lookup that resolves the
// name stored in a Light or Camera to its carrier node.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name.String() == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) MarshalBinary() ([]byte, error) {
	var w wireWriter
	if err := n.encode(&w); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// encode writes the subtree depth-first: name, transform, mesh
// indices, metadata, then each child in order.
func (n *Node) encode(w *wireWriter) error {
	n.Name.encode(w)
	n.Transformation.encode(w)
	w.u32(uint32(len(n.MeshIndices)))
	for _, idx := range n.MeshIndices {
		w.u32(idx)
	}
	if err := encodeMetadata(w, n.Metadata); err != nil {
		return err
	}
	w.u32(uint32(len(n.Children)))
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("node %q: nil child", n.Name.String())
		}
		if err := c.encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeNode(&r, 0)
	if err != nil {
		return err
	}
	*n = *out
	return nil
}

func decodeNode(r *wireReader, depth int) (*Node, error) {
	if depth > maxNodeDepth {
		return nil, fmt.Errorf("node hierarchy deeper than %d levels", maxNodeDepth)
	}
	n := &Node{}
	name, err := decodeFixedString(r)
	if err != nil {
		return nil, err
	}
	n.Name = name
	n.Transformation = decodeMatrix4x4(r)
	meshCount := r.count(4)
	if r.err != nil {
		return nil, r.err
	}
	if meshCount > 0 {
		n.MeshIndices = make([]uint32, meshCount)
		for i := range n.MeshIndices {
			n.MeshIndices[i] = r.u32()
		}
	}
	n.Metadata, err = decodeMetadata(r)
	if err != nil {
		return nil, err
	}
	childCount := r.count(fixedStringWireSize + 64 + 8)
	if r.err != nil {
		return nil, r.err
	}
	for i := 0; i < childCount; i++ {
		c, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	if r.err != nil {
		return nil, r.err
	}
	return n, nil
}

// Equal compares the whole subtree.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if !n.Name.Equal(o.Name) || n.Transformation != o.Transformation {
		return false
	}
	if len(n.MeshIndices) != len(o.MeshIndices) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.MeshIndices {
		if n.MeshIndices[i] != o.MeshIndices[i] {
			return false
		}
	}
	if !metadataEqual(n.Metadata, o.Metadata) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
