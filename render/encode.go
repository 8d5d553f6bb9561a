package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	ico "github.com/sergeymakinen/go-ico"
)

// Encoder is the imaging capability the pipeline needs: framing canvases into
// an ICO container and encoding a single canvas as PNG.
type Encoder interface {
	EncodeICO(w io.Writer, frames []image.Image) error
	EncodePNG(w io.Writer, m image.Image) error
}

// DefaultEncoder returns the Encoder backing the real generator.
func DefaultEncoder() Encoder {
	return stdEncoder{}
}

type stdEncoder struct{}

func (stdEncoder) EncodeICO(w io.Writer, frames []image.Image) error {
	return ico.EncodeAll(w, frames)
}

func (stdEncoder) EncodePNG(w io.Writer, m image.Image) error {
	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	return enc.Encode(w, m)
}

// save encodes into a temporary file in destDir and renames it into place, so
// a failed encode or write never leaves a partial destination file.
func save(destDir, destName string, encode func(io.Writer) error) (err error) {
	slog.Info("writing", "file", destName, "dir", destDir)

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		} else {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary destination", "name", outFile.Name(), "error", defErr)
			}
		}
	}()

	if err = encode(outFile); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", destName, err)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
