package huffman

// Codeword is the bit sequence assigned to one symbol, kept in the low Len
// bits of Bits, most significant bit first. Codewords stay well inside 64
// bits: with 32-bit counts the deepest possible tree is under 50 levels.
type Codeword struct {
	Bits uint64
	Len  uint8
}

// String renders the codeword as a binary digit string, e.g. "0110".
func (c Codeword) String() string {
	buf := make([]byte, c.Len)
	for i := uint8(0); i < c.Len; i++ {
		buf[i] = '0' + byte((c.Bits>>uint(c.Len-1-i))&1)
	}
	return string(buf)
}

// Codebook maps each symbol of a tree to its codeword. Leaf-only assignment
// in a binary tree makes the code prefix-free by construction.
type Codebook map[Symbol]Codeword

// BuildCodebook derives codewords from root-to-leaf paths, appending 0 when
// descending left and 1 when descending right. The walk is an explicit-stack
// depth-first traversal.
//
// A nil root yields an empty book. A bare leaf root gets the synthetic
// one-bit code "0": a zero-length codeword would never consume input and
// decoding would not terminate.
func BuildCodebook(root *Node) Codebook {
	book := make(Codebook)
	if root == nil {
		return book
	}
	if root.IsLeaf() {
		book[root.Symbol] = Codeword{Bits: 0, Len: 1}
		return book
	}

	type frame struct {
		node *Node
		code Codeword
	}
	stack := []frame{{root, Codeword{}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			book[f.node.Symbol] = f.code
			continue
		}
		stack = append(stack,
			frame{f.node.Right, Codeword{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
			frame{f.node.Left, Codeword{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
		)
	}
	return book
}
