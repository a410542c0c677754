package service

import (
	"errors"
	"io/fs"
	"os"

	"github.com/huffpack/huffpack/internal/common"
	"github.com/huffpack/huffpack/internal/core/huffman"
	"github.com/huffpack/huffpack/utils/config"
	"github.com/huffpack/huffpack/utils/helpers"
	"github.com/rs/zerolog"
)

// EncodeStats summarizes one file encode: sizes in bytes and the
// original/compressed ratio (0 when the compressed size is 0).
type EncodeStats struct {
	OriginalSize   int64
	CompressedSize int64
	Ratio          float64
}

type PackService interface {
	// Encode compresses text into container bytes.
	Encode(text string) ([]byte, error)
	// Decode reconstructs the original text from container bytes.
	Decode(data []byte) (string, error)
	// EncodeFile reads inputPath as text and writes the container to
	// outputPath. Nothing is written when any stage fails.
	EncodeFile(inputPath, outputPath string) (EncodeStats, error)
	// DecodeFile reads inputPath as a container and writes the
	// reconstructed text to outputPath.
	DecodeFile(inputPath, outputPath string) error
}

type packService struct {
	conf   *config.Conf
	logger zerolog.Logger
}

func NewPackService(conf *config.Conf, logger zerolog.Logger) PackService {
	return &packService{
		conf:   conf,
		logger: logger.With().Str("name", "pack_service").Logger(),
	}
}

// Each call builds its own table, tree and codebook; nothing is shared or
// cached across calls.
func (p *packService) Encode(text string) ([]byte, error) {
	table := huffman.CountFrequencies(text)
	book := huffman.BuildCodebook(huffman.BuildTree(table))
	stream := huffman.Encode(text, book)

	return huffman.Container{Table: table, Stream: stream}.Marshal()
}

func (p *packService) Decode(data []byte) (string, error) {
	container, err := huffman.Unmarshal(data)
	if err != nil {
		return "", err
	}

	// Container.Decode rebuilds the tree from the loaded table; decode
	// never depends on state from a previous call.
	return container.Decode()
}

func (p *packService) EncodeFile(inputPath, outputPath string) (EncodeStats, error) {
	text, err := readInput(inputPath)
	if err != nil {
		return EncodeStats{}, err
	}
	if limit := p.conf.Int64("pack.max-input-bytes", 0); limit > 0 && int64(len(text)) > limit {
		return EncodeStats{}, common.BadRequestError("Input file exceeds pack.max-input-bytes")
	}

	data, err := p.Encode(string(text))
	if err != nil {
		return EncodeStats{}, err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return EncodeStats{}, common.InternalServerError("Cannot write output file", err)
	}

	stats := EncodeStats{
		OriginalSize:   int64(len(text)),
		CompressedSize: int64(len(data)),
		Ratio:          helpers.Ratio(int64(len(text)), int64(len(data))),
	}

	p.logger.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int64("original_size", stats.OriginalSize).
		Int64("compressed_size", stats.CompressedSize).
		Float64("ratio", stats.Ratio).
		Msg("Encoded file")

	return stats, nil
}

func (p *packService) DecodeFile(inputPath, outputPath string) error {
	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	text, err := p.Decode(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return common.InternalServerError("Cannot write output file", err)
	}

	p.logger.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("size", len(text)).
		Msg("Decoded file")

	return nil
}

// readInput surfaces a missing input file as a not-found error before any
// processing begins.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.NotFoundError(helpers.Concat("Input file ", path, " does not exist"))
	}
	if err != nil {
		return nil, common.InternalServerError("Cannot read input file", err)
	}
	return data, nil
}
