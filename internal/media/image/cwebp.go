package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// commandContext is swapped in tests to fake the cwebp binary.
var commandContext = exec.CommandContext

const DefaultQuality = 80

// CwebpEncoder produces lossy WebP by handing a lossless PNG intermediate to
// the cwebp CLI.
type CwebpEncoder struct {
	Path    string
	Quality int
	TempDir string
}

var _ Encoder = (*CwebpEncoder)(nil)

func NewCwebpEncoder(path string, quality int, tempDir string) *CwebpEncoder {
	if path == "" {
		path = "cwebp"
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &CwebpEncoder{Path: path, Quality: quality, TempDir: tempDir}
}

func (e *CwebpEncoder) Ext() string         { return ".webp" }
func (e *CwebpEncoder) ContentType() string { return "image/webp" }

func (e *CwebpEncoder) Encode(ctx context.Context, img image.Image) ([]byte, error) {
	tempDir := e.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	id := uuid.NewString()
	inputPath := filepath.Join(tempDir, id+"_source.png")
	outputPath := filepath.Join(tempDir, id+".webp")
	defer func() { _ = os.Remove(inputPath) }()
	defer func() { _ = os.Remove(outputPath) }()

	var src bytes.Buffer
	if err := (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(&src, img); err != nil {
		return nil, fmt.Errorf("encode intermediate png: %w", err)
	}
	if err := os.WriteFile(inputPath, src.Bytes(), 0o600); err != nil {
		return nil, fmt.Errorf("write intermediate png: %w", err)
	}

	args := []string{
		"-quiet",
		"-q", strconv.Itoa(e.Quality),
		"-metadata", "none",
		inputPath,
		"-o", outputPath,
	}

	cmd := commandContext(ctx, e.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("cwebp failed: %w, stderr: %s", err, stderr.String())
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read cwebp output: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("cwebp produced empty output")
	}
	return out, nil
}

// Available reports whether the configured cwebp binary can be found.
func (e *CwebpEncoder) Available() error {
	if _, err := exec.LookPath(e.Path); err != nil {
		return fmt.Errorf("cwebp not found: %w", err)
	}
	return nil
}
