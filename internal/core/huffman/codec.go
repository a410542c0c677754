package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// EncodedStream is a bit sequence packed MSB-first into bytes. Only the
// first Len bits of Data are meaningful; the tail of the final byte is zero
// padding added by the bit writer.
type EncodedStream struct {
	Data []byte
	Len  uint64 // length in bits
}

// Padding is the number of zero bits appended after the last meaningful bit
// to reach a byte boundary (0–7).
func (s EncodedStream) Padding() uint8 {
	if s.Len%8 == 0 {
		return 0
	}
	return uint8(8 - s.Len%8)
}

// Encode maps each symbol of text through the codebook and concatenates the
// codewords into one bit sequence. A missing codebook entry is a programming
// error (table and book always derive from the same input) and panics rather
// than returning an error.
func Encode(text string, book Codebook) EncodedStream {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var n uint64
	for _, r := range text {
		code, ok := book[r]
		if !ok {
			panic(fmt.Sprintf("huffman: symbol %q has no codeword", r))
		}
		// bytes.Buffer never fails, so neither does the bit writer.
		if err := w.WriteBits(code.Bits, code.Len); err != nil {
			panic(err)
		}
		n += uint64(code.Len)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return EncodedStream{Data: buf.Bytes(), Len: n}
}

// Decode walks the tree bit by bit: 0 descends left, 1 right; reaching a
// leaf emits its symbol and resets the walk to the root. A well-formed
// stream ends exactly on a codeword boundary; ending mid-codeword reports
// ErrCorruptContainer.
//
// A bare leaf root mirrors the encoder's synthetic one-bit convention: each
// consumed bit emits the root's symbol without descending.
func Decode(stream EncodedStream, root *Node) (string, error) {
	if stream.Len == 0 {
		return "", nil
	}
	if root == nil {
		return "", fmt.Errorf("%w: payload present but symbol table is empty", ErrCorruptContainer)
	}
	if stream.Len > uint64(len(stream.Data))*8 {
		return "", fmt.Errorf("%w: bit length exceeds payload", ErrCorruptContainer)
	}

	r := bitio.NewReader(bytes.NewReader(stream.Data))
	var out strings.Builder

	if root.IsLeaf() {
		for i := uint64(0); i < stream.Len; i++ {
			if _, err := r.ReadBool(); err != nil {
				return "", fmt.Errorf("%w: payload shorter than bit length", ErrCorruptContainer)
			}
			out.WriteRune(root.Symbol)
		}
		return out.String(), nil
	}

	node := root
	for i := uint64(0); i < stream.Len; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: payload shorter than bit length", ErrCorruptContainer)
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			out.WriteRune(node.Symbol)
			node = root
		}
	}
	if node != root {
		return "", fmt.Errorf("%w: stream ends mid codeword", ErrCorruptContainer)
	}
	return out.String(), nil
}
