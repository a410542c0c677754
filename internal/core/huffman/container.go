// Package huffman implements static Huffman coding over 16-bit symbols:
// frequency counting, greedy tree construction, codebook derivation, the
// bitstream codec, and the self-describing binary container.
//
// The container stores the frequency table, never the tree; the loader
// reruns the identical builder over the loaded table, so both sides agree
// on the tree shape by construction.
package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrCorruptContainer reports a malformed or inconsistent container.
	ErrCorruptContainer = errors.New("huffman: corrupt container")
	// ErrSymbolOutOfRange reports a symbol that does not fit the 16-bit
	// field of the container format.
	ErrSymbolOutOfRange = errors.New("huffman: symbol exceeds 16-bit range")
)

// Container layout, big-endian throughout:
//
//	4 bytes  symbol count k
//	1 byte   padding (zero bits appended to the final payload byte, 0–7)
//	k * 6    symbol (16-bit) + frequency (32-bit) entries
//	rest     bit-packed payload, MSB-first within each byte
const (
	headerSize = 5
	entrySize  = 6
)

// Container is the only persisted artifact: a frequency table plus the
// packed encoded stream.
type Container struct {
	Table  FrequencyTable
	Stream EncodedStream
}

// Marshal serializes the container. Symbols are written in ascending
// code-point order so the same input always produces the same bytes.
// A symbol above MaxSymbol fails with ErrSymbolOutOfRange; the format is
// not allowed to truncate silently.
func (c Container) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	var scratch [entrySize]byte

	binary.BigEndian.PutUint32(scratch[:4], uint32(len(c.Table)))
	scratch[4] = c.Stream.Padding()
	buf.Write(scratch[:headerSize])

	for _, s := range c.Table.Symbols() {
		if s < 0 || s > MaxSymbol {
			return nil, fmt.Errorf("%w: %U", ErrSymbolOutOfRange, s)
		}
		binary.BigEndian.PutUint16(scratch[:2], uint16(s))
		binary.BigEndian.PutUint32(scratch[2:entrySize], c.Table[s])
		buf.Write(scratch[:entrySize])
	}

	buf.Write(c.Stream.Data)
	return buf.Bytes(), nil
}

// Unmarshal parses and validates a serialized container. Decoding must not
// proceed past a confidently-detected inconsistency, so a truncated header,
// an out-of-range padding value, a cut-short symbol table, a duplicate
// symbol, or padding without payload all fail with ErrCorruptContainer.
func Unmarshal(data []byte) (Container, error) {
	if len(data) < headerSize {
		return Container{}, fmt.Errorf("%w: truncated header (%d bytes)", ErrCorruptContainer, len(data))
	}

	k := binary.BigEndian.Uint32(data[:4])
	padding := data[4]
	if padding > 7 {
		return Container{}, fmt.Errorf("%w: padding %d out of range", ErrCorruptContainer, padding)
	}

	rest := data[headerSize:]
	if uint64(len(rest)) < uint64(k)*entrySize {
		return Container{}, fmt.Errorf("%w: symbol table cut short (%d of %d entries)",
			ErrCorruptContainer, len(rest)/entrySize, k)
	}

	table := make(FrequencyTable, k)
	for i := uint64(0); i < uint64(k); i++ {
		entry := rest[i*entrySize : (i+1)*entrySize]
		s := Symbol(binary.BigEndian.Uint16(entry[:2]))
		if _, dup := table[s]; dup {
			return Container{}, fmt.Errorf("%w: duplicate symbol %U", ErrCorruptContainer, s)
		}
		table[s] = binary.BigEndian.Uint32(entry[2:entrySize])
	}

	payload := rest[uint64(k)*entrySize:]
	if len(payload) == 0 && padding != 0 {
		return Container{}, fmt.Errorf("%w: padding without payload", ErrCorruptContainer)
	}

	return Container{
		Table:  table,
		Stream: EncodedStream{Data: payload, Len: uint64(len(payload))*8 - uint64(padding)},
	}, nil
}

// Decode rebuilds the tree from the stored table and replays the stream
// against it. The emitted symbol count must match the table's frequency
// sum; a shortfall or overrun means the payload and table disagree.
func (c Container) Decode() (string, error) {
	text, err := Decode(c.Stream, BuildTree(c.Table))
	if err != nil {
		return "", err
	}
	if got, want := uint64(utf8.RuneCountInString(text)), c.Table.Total(); got != want {
		return "", fmt.Errorf("%w: decoded %d symbols, table promises %d", ErrCorruptContainer, got, want)
	}
	return text, nil
}
