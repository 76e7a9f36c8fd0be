package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenListOrdersByF(t *testing.T) {
	list := newOpenList()
	for _, f := range []float64{5, 1, 3, 2, 4} {
		list.push(&Node{f: f})
	}
	var popped []float64
	for !list.isEmpty() {
		popped = append(popped, list.popMin().f)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, popped)
}

func TestOpenListBreaksEqualKeysByInsertionOrder(t *testing.T) {
	list := newOpenList()
	first := &Node{X: 1, f: 7}
	second := &Node{X: 2, f: 7}
	third := &Node{X: 3, f: 7}
	list.push(first)
	list.push(second)
	list.push(third)

	assert.Same(t, first, list.popMin())
	assert.Same(t, second, list.popMin())
	assert.Same(t, third, list.popMin())
}

func TestOpenListUpdateRepositionsOnKeyDecrease(t *testing.T) {
	list := newOpenList()
	cheap := &Node{X: 1, f: 2}
	expensive := &Node{X: 2, f: 9}
	list.push(cheap)
	list.push(expensive)

	expensive.f = 1
	list.update(expensive)

	require.False(t, list.isEmpty())
	assert.Same(t, expensive, list.popMin())
	assert.Same(t, cheap, list.popMin())
	assert.True(t, list.isEmpty())
}
