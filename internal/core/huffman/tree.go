package huffman

import "container/heap"

// Node is one node of the code tree. A node is either a leaf carrying a
// symbol or an internal node carrying both children; Weight is the leaf's
// frequency or the frequency sum of the subtree. Children are owned
// exclusively by their parent.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n carries a symbol rather than children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

// The comparator uses weight only. Ties resolve to whatever order the heap
// yields; encoder and decoder run the identical builder over the identical
// table, so both sides still grow the same shape.
func (h nodeHeap) Less(i, j int) bool { return h[i].Weight < h[j].Weight }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// BuildTree runs the greedy Huffman construction over table: seed the queue
// with one leaf per symbol, then repeatedly merge the two lightest nodes
// (first extracted becomes the left child) until one root remains.
//
// An empty table yields a nil root, the "no tree" signal. A single-entry
// table yields a bare leaf as root; the codebook gives it a synthetic
// one-bit code so decoding still advances (see BuildCodebook).
func BuildTree(table FrequencyTable) *Node {
	if len(table) == 0 {
		return nil
	}

	nodes := make(nodeHeap, 0, len(table))
	for _, s := range table.Symbols() {
		nodes = append(nodes, &Node{Symbol: s, Weight: uint64(table[s])})
	}
	heap.Init(&nodes)

	for nodes.Len() > 1 {
		left := heap.Pop(&nodes).(*Node)
		right := heap.Pop(&nodes).(*Node)
		heap.Push(&nodes, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		})
	}

	return nodes[0]
}
