package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/flycam/pkg/math"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("root")

	assert.Equal(t, math.Vec3{}, n.Position())
	assert.Equal(t, math.Vec3{}, n.Rotation())
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, n.Scale())
	assert.Nil(t, n.Parent())
	assert.Empty(t, n.Children())
	assert.False(t, n.Destroyed())
}

func TestSetPositionPropagatesAdditively(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a.SetPosition(math.V3(1, 0, 0))
	b.SetPosition(math.V3(0, 2, 0))
	root.AddChild(a)
	root.AddChild(b)

	p := math.V3(10, 20, 30)
	root.SetPosition(p)

	assert.Equal(t, p, root.Position())
	assert.Equal(t, math.V3(11, 20, 30), a.Position())
	assert.Equal(t, math.V3(10, 22, 30), b.Position())
}

func TestSetPositionDriftsOnRepeatedCalls(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	p := math.V3(1, 1, 1)
	root.SetPosition(p)
	root.SetPosition(p)
	root.SetPosition(p)

	// Parent stays put, child accumulates p each call.
	assert.Equal(t, p, root.Position())
	assert.Equal(t, math.V3(3, 3, 3), child.Position())
}

func TestSetPositionPropagatesThroughGrandchildren(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	root.AddChild(child)
	child.AddChild(grandchild)

	root.SetPosition(math.V3(1, 0, 0))

	// child becomes (1,0,0) and passes its new position down to grandchild.
	assert.Equal(t, math.V3(1, 0, 0), child.Position())
	assert.Equal(t, math.V3(1, 0, 0), grandchild.Position())

	root.SetPosition(math.V3(1, 0, 0))
	assert.Equal(t, math.V3(2, 0, 0), child.Position())
	assert.Equal(t, math.V3(3, 0, 0), grandchild.Position())
}

func TestRotationAndScaleDoNotPropagate(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	root.SetRotation(math.V3(0, 90, 0))
	root.SetScale(math.V3(2, 2, 2))

	assert.Equal(t, math.Vec3{}, child.Rotation())
	assert.Equal(t, math.One(), child.Scale())
}

func TestAddChild(t *testing.T) {
	root := NewNode("root")
	first := NewNode("first")
	second := NewNode("second")

	root.AddChild(first)
	root.AddChild(second)

	children := root.Children()
	require.Len(t, children, 2)
	assert.Same(t, second, children[len(children)-1])
	assert.Same(t, root, second.Parent())
	assert.Same(t, root, first.Parent())
}

func TestAddChildDoesNotDetachFromPreviousParent(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	a.AddChild(c)
	b.AddChild(c)

	assert.Contains(t, a.Children(), c)
	assert.Contains(t, b.Children(), c)
	assert.Same(t, b, c.Parent())
}

func TestRemoveChild(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	root.RemoveChild(b)

	assert.Equal(t, []*Node{a, c}, root.Children())
	assert.Nil(t, b.Parent())
	assert.Same(t, root, a.Parent())
}

func TestRemoveChildRemovesOnlyFirstMatch(t *testing.T) {
	root := NewNode("root")
	c := NewNode("c")
	root.AddChild(c)
	root.AddChild(c)

	root.RemoveChild(c)

	assert.Equal(t, []*Node{c}, root.Children())
	assert.Nil(t, c.Parent())
}

func TestRemoveAbsentChildIsNoop(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	stranger := NewNode("stranger")
	other := NewNode("other")
	root.AddChild(a)
	other.AddChild(stranger)

	assert.NotPanics(t, func() { root.RemoveChild(stranger) })

	assert.Equal(t, []*Node{a}, root.Children())
	assert.Same(t, other, stranger.Parent())
}

func TestChildrenReturnsSnapshot(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	root.AddChild(a)

	children := root.Children()
	children[0] = NewNode("impostor")
	_ = append(children, NewNode("extra"))

	require.Len(t, root.Children(), 1)
	assert.Same(t, a, root.Children()[0])
}

func TestDestroyReleasesDescendantsPostOrder(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	great := NewNode("great")
	root.AddChild(child)
	child.AddChild(grandchild)
	grandchild.AddChild(great)

	alive := map[string]bool{}
	var order []string
	for _, n := range []*Node{root, child, grandchild, great} {
		alive[n.Name()] = true
		n.OnDestroy(func(n *Node) {
			alive[n.Name()] = false
			order = append(order, n.Name())
		})
	}

	root.Destroy()

	for name, ok := range alive {
		assert.Falsef(t, ok, "%s still alive", name)
	}
	assert.Equal(t, []string{"great", "grandchild", "child", "root"}, order)
	assert.True(t, great.Destroyed())
	assert.Nil(t, great.Parent())
	assert.Empty(t, root.Children())
}

func TestDestroyDetachesFromParent(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	calls := 0
	child.OnDestroy(func(*Node) { calls++ })

	child.Destroy()
	child.Destroy()

	assert.Empty(t, root.Children())
	assert.Nil(t, child.Parent())
	assert.False(t, root.Destroyed())
	assert.Equal(t, 1, calls)
}

func TestRootAndWalk(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a1 := NewNode("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	assert.Same(t, root, a1.Root())
	assert.Same(t, root, root.Root())

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name())
		return true
	})
	assert.Equal(t, []string{"root", "a", "a1", "b"}, visited)

	visited = nil
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name())
		return n != a
	})
	assert.Equal(t, []string{"root", "a", "b"}, visited)

	assert.Equal(t, []*Node{a, a1, b}, root.ChildrenRecursive())
}

func TestHierarchyString(t *testing.T) {
	root := NewNode("root")
	child := NewNode("lamp")
	root.AddChild(child)
	root.SetPosition(math.V3(1, 2, 3))

	want := "root (1.00, 2.00, 3.00)\n  lamp (1.00, 2.00, 3.00)\n"
	assert.Equal(t, want, root.HierarchyString())
}
