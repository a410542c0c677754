package huffman

import (
	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
)

// A Symbol is a single code point of the input text. The container format
// stores symbols in 16 bits, so anything above MaxSymbol cannot be
// serialized (see Container.Marshal).
type Symbol = rune

// MaxSymbol is the largest code point the container format can carry.
const MaxSymbol Symbol = 0xFFFF

// FrequencyTable maps each distinct symbol of an input to its occurrence
// count. A table is built fresh per encode or decode; it is the only state
// that crosses the wire.
type FrequencyTable map[Symbol]uint32

// CountFrequencies tallies the symbols of text in a single pass.
// Empty input yields an empty table.
func CountFrequencies(text string) FrequencyTable {
	table := make(FrequencyTable)
	for _, r := range text {
		table[r]++
	}
	return table
}

// Symbols returns the table's symbols in ascending code-point order. Map
// iteration order is random, so every place that needs a reproducible
// ordering (serialization, heap seeding) goes through here.
func (t FrequencyTable) Symbols() []Symbol {
	symbols := maputil.Keys(t)
	slice.Sort(symbols)
	return symbols
}

// Total is the sum of all counts, i.e. the symbol length of the original
// input.
func (t FrequencyTable) Total() uint64 {
	var n uint64
	for _, count := range t {
		n += uint64(count)
	}
	return n
}
