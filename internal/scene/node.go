// Package scene provides a minimal scene graph: nodes with a local transform
// that exclusively own their children.
package scene

import (
	"fmt"
	"strings"

	"github.com/Faultbox/flycam/pkg/math"
)

// Node is a positioned entity in a parent/child hierarchy.
//
// A node owns its children. The parent link is a plain back-reference used for
// upward queries only; it is cleared when the node is removed or destroyed.
// Only position propagates to children. Rotation and scale are stored but the
// hierarchy never reads them.
type Node struct {
	name string

	position math.Vec3
	rotation math.Vec3
	scale    math.Vec3

	parent   *Node
	children []*Node

	destroyed bool
	onDestroy []func(*Node)
}

// NewNode creates a standalone node with no parent and no children.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		scale: math.One(),
	}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// Position returns the node's local position.
func (n *Node) Position() math.Vec3 {
	return n.position
}

// SetPosition sets the node's position to p, then shifts every child by p:
// each child c receives c.SetPosition(c.Position() + p), recursively.
//
// The shift is additive on every call. Calling SetPosition twice with the same
// p moves children twice; children do not hold a fixed offset from the parent.
func (n *Node) SetPosition(p math.Vec3) {
	n.position = p
	for _, child := range n.children {
		child.SetPosition(child.Position().Add(p))
	}
}

// Rotation returns the node's local rotation (Euler angles, degrees).
func (n *Node) Rotation() math.Vec3 {
	return n.rotation
}

// SetRotation sets the node's local rotation. It is not propagated.
func (n *Node) SetRotation(r math.Vec3) {
	n.rotation = r
}

// Scale returns the node's local scale.
func (n *Node) Scale() math.Vec3 {
	return n.scale
}

// SetScale sets the node's local scale. It is not propagated.
func (n *Node) SetScale(s math.Vec3) {
	n.scale = s
}

// AddChild appends child to the node's children and points child's parent at n.
//
// The child is not removed from a previous parent's list. Adding a node that
// already has a parent leaves it listed under both.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
	child.parent = n
}

// RemoveChild removes the first occurrence of child and clears its parent.
// Removing a node that is not a child does nothing.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children[i] = nil
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children in insertion order.
func (n *Node) Children() []*Node {
	return append(make([]*Node, 0, len(n.children)), n.children...)
}

// ChildrenRecursive returns all descendants in depth-first pre-order.
func (n *Node) ChildrenRecursive() []*Node {
	var out []*Node
	for _, child := range n.children {
		out = append(out, child)
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// Root returns the topmost ancestor, or n itself if it has no parent.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// OnDestroy registers fn to run when the node is destroyed.
func (n *Node) OnDestroy(fn func(*Node)) {
	n.onDestroy = append(n.onDestroy, fn)
}

// Destroy releases the node and, before it, every descendant (post-order).
// The node is detached from its parent and its children list is emptied.
// Destroying an already destroyed node does nothing.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	for _, child := range n.children {
		child.destroy()
	}
	n.children = nil
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.finish()
}

// destroy releases a subtree whose parent is being destroyed; the parent
// drops its whole children list afterwards, so there is no per-child removal.
func (n *Node) destroy() {
	for _, child := range n.children {
		child.destroy()
	}
	n.children = nil
	n.parent = nil
	n.finish()
}

func (n *Node) finish() {
	n.destroyed = true
	for _, fn := range n.onDestroy {
		fn(n)
	}
	n.onDestroy = nil
}

// Destroyed reports whether Destroy has released this node.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// HierarchyString returns an indented dump of the node and its descendants
// with their positions, for debug logging.
func (n *Node) HierarchyString() string {
	var sb strings.Builder
	var write func(node *Node, depth int)
	write = func(node *Node, depth int) {
		p := node.position
		fmt.Fprintf(&sb, "%s%s (%.2f, %.2f, %.2f)\n", strings.Repeat("  ", depth), node.name, p.X, p.Y, p.Z)
		for _, child := range node.children {
			write(child, depth+1)
		}
	}
	write(n, 0)
	return sb.String()
}
