package geom

import (
	"sync"

	"github.com/xichen2020/foundation/refcnt"
	"github.com/xichen2020/foundation/refptr"
)

// Group is a shape owning references to other shapes. Releasing the last
// reference to a group releases its references to the children.
type Group struct {
	refcnt.AtomicRefCounter

	mu       sync.RWMutex
	children []*refptr.Ptr[Shape]
}

// NewGroup creates an empty group owned by the returned handle.
func NewGroup() *refptr.Ptr[*Group] {
	return refptr.Make(func(g *Group) {
		g.SetOnZeroRefCount(g.release)
	})
}

// Add adds a reference to child to the group. Empty handles are ignored.
func (g *Group) Add(child *refptr.Ptr[Shape]) {
	if !child.Valid() {
		return
	}
	g.mu.Lock()
	g.children = append(g.children, child.Clone())
	g.mu.Unlock()
}

// Len returns the number of children.
func (g *Group) Len() int {
	g.mu.RLock()
	n := len(g.children)
	g.mu.RUnlock()
	return n
}

// Bounds returns the union of the bounds of the children.
func (g *Group) Bounds() Box {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b Box
	for _, child := range g.children {
		b = b.Union(child.Get().Bounds())
	}
	return b
}

func (g *Group) release() {
	g.mu.Lock()
	children := g.children
	g.children = nil
	g.mu.Unlock()

	for _, child := range children {
		child.Reset()
	}
}
