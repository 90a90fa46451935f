// Package huffman builds optimal prefix-free binary codes from symbol
// frequencies. The construction is fully deterministic: the same frequency
// table always yields the same tree, codewords and metrics.
package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Symbol is one unit of the alphabet being coded. Callers typically code the
// runes of a text, but the construction only ever looks at frequencies, never
// at what a symbol means.
type Symbol rune

// FrequencyTable maps each distinct symbol to its occurrence count.
// Counts must be positive.
type FrequencyTable map[Symbol]int

// CountSymbols tallies the runes of text into a FrequencyTable.
func CountSymbols(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[Symbol(r)]++
	}
	return freqs
}

// Total returns the number of symbol occurrences the table covers.
func (f FrequencyTable) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
	placeholderNode
)

// Node is a node of a Huffman prefix tree: a leaf carrying a symbol, an
// internal node with exactly two children, or the childless placeholder that
// pads a single-symbol tree. Trees returned by BuildTree are never modified
// afterwards and may be shared freely.
type Node struct {
	kind   nodeKind
	symbol Symbol
	freq   int
	left   *Node
	right  *Node
}

// Frequency returns the occurrence count covered by this node. For internal
// nodes it is the sum over the whole subtree.
func (n *Node) Frequency() int { return n.freq }

// Symbol returns the leaf's symbol. ok is false for internal and placeholder
// nodes.
func (n *Node) Symbol() (sym Symbol, ok bool) {
	if n.kind != leafNode {
		return 0, false
	}
	return n.symbol, true
}

// IsLeaf reports whether the node carries a symbol.
func (n *Node) IsLeaf() bool { return n.kind == leafNode }

// Left returns the left child, nil for leaves and placeholders.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, nil for leaves and placeholders.
func (n *Node) Right() *Node { return n.right }

// queued pairs a tree node with its insertion slot. Slots come from a single
// counter covering leaves and merged nodes alike, so frequency ties always
// resolve to the earlier entrant and the tree shape is reproducible.
type queued struct {
	node *Node
	seq  int
}

// nodeQueue implements a min-heap over queued nodes, ordered by frequency
// and then by insertion slot.
type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.freq != q[j].node.freq {
		return q[i].node.freq < q[j].node.freq
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds an element to the queue.
func (q *nodeQueue) Push(x interface{}) {
	*q = append(*q, x.(queued))
}

// Pop removes and returns the smallest element of the queue.
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BuildTree runs Huffman's greedy construction over the given frequencies.
// Leaves enter the queue in ascending symbol order, and the two lowest
// entries are merged until one node remains; the first node extracted becomes
// the left child of the merge. A zero or negative count causes a panic.
//
// A single-entry table yields a synthetic root whose left child is the sole
// leaf and whose right child is an empty placeholder, so the symbol still
// receives a one-digit codeword.
//
// BuildTree returns ErrEmptyInput when freqs has no entries.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := maps.Keys(freqs)
	slices.Sort(symbols)

	q := make(nodeQueue, 0, len(symbols))
	seq := 0
	for _, sym := range symbols {
		count := freqs[sym]
		assert.Assertf(count > 0, "count for symbol %q must be positive, got %d", sym, count)
		q = append(q, queued{node: &Node{kind: leafNode, symbol: sym, freq: count}, seq: seq})
		seq++
	}

	if len(q) == 1 {
		only := q[0].node
		return &Node{
			kind:  internalNode,
			freq:  only.freq,
			left:  only,
			right: &Node{kind: placeholderNode},
		}, nil
	}

	heap.Init(&q)
	for q.Len() > 1 {
		left := heap.Pop(&q).(queued).node
		right := heap.Pop(&q).(queued).node
		merged := &Node{
			kind:  internalNode,
			freq:  left.freq + right.freq,
			left:  left,
			right: right,
		}
		heap.Push(&q, queued{node: merged, seq: seq})
		seq++
	}
	return q[0].node, nil
}
