package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestContainerRoundTrip(t *testing.T) {
	table, _, stream := encodeAll(t, "compress me, gently")

	data, err := Container{Table: table, Stream: stream}.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	container, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(container.Table) != len(table) {
		t.Fatalf("expected %d table entries, got %d", len(table), len(container.Table))
	}
	for s, count := range table {
		if container.Table[s] != count {
			t.Errorf("symbol %q: expected %d, got %d", s, count, container.Table[s])
		}
	}
	if container.Stream.Len != stream.Len {
		t.Errorf("expected bit length %d, got %d", stream.Len, container.Stream.Len)
	}
	if !bytes.Equal(container.Stream.Data, stream.Data) {
		t.Errorf("expected payload %x, got %x", stream.Data, container.Stream.Data)
	}
}

func TestContainerLayout(t *testing.T) {
	table, _, stream := encodeAll(t, "ba")

	data, err := Container{Table: table, Stream: stream}.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// 4-byte symbol count, 1-byte padding, then entries in ascending
	// code-point order.
	if k := binary.BigEndian.Uint32(data[:4]); k != 2 {
		t.Errorf("expected symbol count 2, got %d", k)
	}
	if data[4] != 6 {
		t.Errorf("expected padding 6, got %d", data[4])
	}
	if s := binary.BigEndian.Uint16(data[5:7]); s != 'a' {
		t.Errorf("expected first symbol %d, got %d", 'a', s)
	}
	if freq := binary.BigEndian.Uint32(data[7:11]); freq != 1 {
		t.Errorf("expected frequency 1, got %d", freq)
	}
	if s := binary.BigEndian.Uint16(data[11:13]); s != 'b' {
		t.Errorf("expected second symbol %d, got %d", 'b', s)
	}
	if len(data) != headerSize+2*entrySize+1 {
		t.Errorf("expected %d bytes, got %d", headerSize+2*entrySize+1, len(data))
	}
}

func TestEmptyContainer(t *testing.T) {
	data, err := Container{Table: FrequencyTable{}}.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) != headerSize {
		t.Fatalf("expected a bare %d-byte header, got %d bytes", headerSize, len(data))
	}

	container, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	text, err := container.Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestSymbolOutOfRange(t *testing.T) {
	table, _, stream := encodeAll(t, "mostly ascii with one 😀")

	_, err := Container{Table: table, Stream: stream}.Marshal()
	if !errors.Is(err, ErrSymbolOutOfRange) {
		t.Errorf("expected ErrSymbolOutOfRange, got %v", err)
	}
}

func TestCorruptContainer(t *testing.T) {
	valid := func() []byte {
		table, _, stream := encodeAll(t, "abracadabra")
		data, err := Container{Table: table, Stream: stream}.Marshal()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}()

	cases := []struct {
		name string
		data []byte
	}{
		{"truncated header", valid[:3]},
		{"padding out of range", append(append([]byte{}, valid[:4]...), append([]byte{9}, valid[5:]...)...)},
		{"symbol table cut short", valid[:headerSize+2*entrySize]},
		{"padding without payload", []byte{0, 0, 0, 0, 3}},
	}

	for _, c := range cases {
		if _, err := Unmarshal(c.data); !errors.Is(err, ErrCorruptContainer) {
			t.Errorf("%s: expected ErrCorruptContainer, got %v", c.name, err)
		}
	}

	// A chopped payload parses but cannot satisfy the frequency table.
	chopped, err := Unmarshal(valid[:len(valid)-1])
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := chopped.Decode(); !errors.Is(err, ErrCorruptContainer) {
		t.Errorf("chopped payload: expected ErrCorruptContainer, got %v", err)
	}
}
