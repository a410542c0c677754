package service

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/huffpack/huffpack/internal/common"
	"github.com/huffpack/huffpack/internal/core/huffman"
	"github.com/huffpack/huffpack/utils/config"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

func newConfig(value map[string]any) *config.Conf {
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}
	if err := conf.Load(confmap.Provider(value, "."), nil); err != nil {
		log.Fatal(err)
	}
	return conf
}

func newPackService(value map[string]any) PackService {
	return NewPackService(newConfig(value), zerolog.Nop())
}

func TestEncodeDecodeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	packed := filepath.Join(dir, "input.huff")
	output := filepath.Join(dir, "output.txt")

	text := []byte("abracadabra abracadabra abracadabra abracadabra")
	if err := os.WriteFile(input, text, 0o644); err != nil {
		t.Fatal(err)
	}

	packService := newPackService(map[string]any{})

	stats, err := packService.EncodeFile(input, packed)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if stats.OriginalSize != int64(len(text)) {
		t.Errorf("expected original size %d, got %d", len(text), stats.OriginalSize)
	}
	if stats.CompressedSize <= 0 {
		t.Errorf("expected a non-empty container, got %d bytes", stats.CompressedSize)
	}
	if want := float64(stats.OriginalSize) / float64(stats.CompressedSize); stats.Ratio != want {
		t.Errorf("expected ratio %f, got %f", want, stats.Ratio)
	}

	if err := packService.DecodeFile(packed, output); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, text) {
		t.Errorf("expected %q, got %q", text, got)
	}
}

func TestEncodeEmptyFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.txt")
	packed := filepath.Join(dir, "empty.huff")
	output := filepath.Join(dir, "empty.out")

	if err := os.WriteFile(input, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	packService := newPackService(map[string]any{})

	stats, err := packService.EncodeFile(input, packed)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Empty input still produces the 5-byte container header.
	if stats.CompressedSize != 5 {
		t.Errorf("expected 5 container bytes, got %d", stats.CompressedSize)
	}
	if stats.Ratio != 0 {
		t.Errorf("expected ratio 0, got %f", stats.Ratio)
	}

	if err := packService.DecodeFile(packed, output); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestEncodeFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "never.huff")

	packService := newPackService(map[string]any{})

	_, err := packService.EncodeFile(filepath.Join(dir, "missing.txt"), output)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !common.IsCodedErrors(err) {
		t.Fatalf("expected a coded error, got %T", err)
	}
	if code := err.(common.CodedErrors).StatusCode(); code != 404 {
		t.Errorf("expected status 404, got %d", code)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("expected no output file to be written")
	}
}

func TestEncodeFileOverLimit(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(input, bytes.Repeat([]byte("x"), 64), 0o644); err != nil {
		t.Fatal(err)
	}

	packService := newPackService(map[string]any{"pack.max-input-bytes": 16})

	_, err := packService.EncodeFile(input, filepath.Join(dir, "big.huff"))
	if err == nil {
		t.Fatal("expected an error for input over the configured limit")
	}
	if code := err.(common.CodedErrors).StatusCode(); code != 400 {
		t.Errorf("expected status 400, got %d", code)
	}
}

func TestDecodeFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.huff")
	output := filepath.Join(dir, "bad.out")

	// symbol_count promises 5 entries, file ends after 2
	data := []byte{0, 0, 0, 5, 0}
	data = append(data, bytes.Repeat([]byte{0, 'a', 0, 0, 0, 1}, 2)...)
	if err := os.WriteFile(input, data, 0o644); err != nil {
		t.Fatal(err)
	}

	packService := newPackService(map[string]any{})

	err := packService.DecodeFile(input, output)
	if !errors.Is(err, huffman.ErrCorruptContainer) {
		t.Fatalf("expected ErrCorruptContainer, got %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("expected no output file to be written")
	}
}
