package gridpath

import "container/heap"

// openList is the frontier of discovered, unexpanded nodes, a min-heap
// keyed by ascending f. Among equal f keys the ordering falls back to
// ascending insertion sequence, so an unresolved tie is still broken
// deterministically: the node pushed first is popped first.
type openList struct {
	items   nodeHeap
	nextSeq uint64
}

func newOpenList() *openList {
	list := &openList{items: make(nodeHeap, 0)}
	heap.Init(&list.items)
	return list
}

func (o *openList) push(node *Node) {
	node.seq = o.nextSeq
	o.nextSeq++
	heap.Push(&o.items, node)
}

func (o *openList) popMin() *Node {
	return heap.Pop(&o.items).(*Node)
}

// update repositions a node after its key decreased. The insertion
// sequence is deliberately kept, so an update does not demote the node
// in the equal-key ordering.
func (o *openList) update(node *Node) {
	heap.Fix(&o.items, node.heapIndex)
}

func (o *openList) isEmpty() bool { return len(o.items) == 0 }

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *nodeHeap) Push(x any) {
	node := x.(*Node)
	node.heapIndex = len(*h)
	*h = append(*h, node)
}

func (h *nodeHeap) Pop() any {
	oldHeap := *h
	n := len(oldHeap)
	node := oldHeap[n-1]
	oldHeap[n-1] = nil
	*h = oldHeap[:n-1]
	return node
}
