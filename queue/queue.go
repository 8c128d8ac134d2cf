// Package queue provides the priority queue behind shortest-path
// extraction over the roadmap.
package queue

import "container/heap"

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Item is an entry in the priority queue.
type Item struct {
	Node     uint32  // Node is the roadmap vertex the entry refers to.
	Distance float64 // Distance is the priority of the item; lower is served first.
	Index    int     // Index is maintained by the heap.Interface methods.
}

// PriorityQueue implements heap.Interface over Items. Ties on Distance
// are broken by the lower Node id, so extraction order is deterministic.
type PriorityQueue struct {
	Items []*Item // Items contains the elements of the priority queue.
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.Items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	if pq.Items[i].Distance != pq.Items[j].Distance {
		return pq.Items[i].Distance < pq.Items[j].Distance
	}
	return pq.Items[i].Node < pq.Items[j].Node
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.Items[i], pq.Items[j] = pq.Items[j], pq.Items[i]
	pq.Items[i].Index, pq.Items[j].Index = i, j // Update indices
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	item, _ := x.(*Item)
	item.Index = len(pq.Items)
	pq.Items = append(pq.Items, item)
}

// Pop removes and returns the top element from the priority queue.
func (pq *PriorityQueue) Pop() any {
	old := pq.Items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil       // Avoid memory leak
	item.Index = -1      // For safety
	pq.Items = old[:n-1] // Reslice without creating a new underlying array

	return item
}

// Top returns the top element without removing it, or nil when empty.
func (pq *PriorityQueue) Top() *Item {
	if len(pq.Items) == 0 {
		return nil
	}
	return pq.Items[0]
}
