package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abrown/tiger-rpython/environment"
)

func TestEmptyFrameHasNoParent(t *testing.T) {
	root := environment.Empty()
	assert.Nil(t, root.Parent)
	assert.Equal(t, 1, root.Depth())
}

func TestPushPopRestoresDepth(t *testing.T) {
	root := environment.Empty()
	child := root.Push(3)
	assert.Equal(t, 2, child.Depth())
	assert.Same(t, root, child.Pop())
}

func TestGetSetSlot(t *testing.T) {
	f := environment.Empty().Push(2)
	f.Set(0, int64(41))
	f.Set(1, "hi")
	assert.Equal(t, int64(41), f.Get(0))
	assert.Equal(t, "hi", f.Get(1))
}

func TestTypeSlotsAreIndependentOfValueSlots(t *testing.T) {
	f := environment.Empty().Push(1)
	f.Set(0, int64(1))
	f.SetType(0, "marker")
	assert.Equal(t, int64(1), f.Get(0))
	assert.Equal(t, "marker", f.GetType(0))
}
