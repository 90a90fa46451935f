package huffman

import (
	"github.com/Abdulrahman4733/Huffman-Encoding/bitstring"
)

// CodeTable maps every coded symbol to its codeword. Tables built by
// GenerateCodes are prefix-free: no codeword is a prefix of another.
type CodeTable map[Symbol]bitstring.Bitstring

// GenerateCodes derives the codeword table from a prefix tree. Descending to
// a left child appends '0', to a right child '1', and reaching a leaf makes
// the accumulated path that symbol's codeword. Placeholder nodes contribute
// no entry. A leaf sitting at the root gets the substitute codeword "0";
// BuildTree never produces such a tree, but a hand-built one may.
func GenerateCodes(root *Node) CodeTable {
	codes := make(CodeTable)

	var walk func(n *Node, path []byte)
	walk = func(n *Node, path []byte) {
		if n == nil {
			return
		}
		switch n.kind {
		case leafNode:
			if len(path) == 0 {
				codes[n.symbol] = "0"
				return
			}
			codes[n.symbol] = bitstring.Bitstring(path)
		case internalNode:
			walk(n.left, append(path, '0'))
			walk(n.right, append(path, '1'))
		case placeholderNode:
			// carries no symbol
		}
	}
	walk(root, nil)

	return codes
}
