// Package render encodes the radio icon into the favicon file set and writes
// it to disk.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"favicongen/icon"

	"github.com/alecthomas/kong"
)

// Output file names, fixed.
const (
	ICOName   = "favicon.ico"
	PNG16Name = "favicon-16x16.png"
	PNG32Name = "favicon-32x32.png"

	// FallbackPage is the manual alternative the fallback notice points at.
	FallbackPage = "favicon-generator.html"
)

// LargeSize is the edge length of the resampled second frame.
const LargeSize = 32

// ErrCapabilityUnavailable is returned when the pipeline has no Encoder. The
// fallback notice has already been printed when this is returned; no files
// have been written.
var ErrCapabilityUnavailable = errors.New("imaging capability unavailable")

// Pipeline renders the icon and writes the favicon file set into Dir.
type Pipeline struct {
	Dir string
	Enc Encoder
	Out io.Writer
}

// Run executes the whole pipeline: render the 16x16 base, upscale to 32x32,
// write the two-frame ICO, then the two standalone PNGs. Confirmation lines
// go to Out, one after the ICO write and one after the PNG writes.
func (p *Pipeline) Run() error {
	if p.Enc == nil {
		fmt.Fprintln(p.Out, "Imaging capability not available. Falling back to the manual generator.")
		fmt.Fprintf(p.Out, "Use the %s file to create the favicon manually.\n", FallbackPage)
		return ErrCapabilityUnavailable
	}

	base := icon.Render()
	large := icon.Upscale(base, LargeSize)

	err := save(p.Dir, ICOName, func(w io.Writer) error {
		return p.Enc.EncodeICO(w, []image.Image{base, large})
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(p.Out, "favicon.ico created successfully!")

	pngs := []struct {
		name string
		img  image.Image
	}{
		{PNG16Name, base},
		{PNG32Name, large},
	}
	for _, out := range pngs {
		if err := save(p.Dir, out.name, func(w io.Writer) error {
			return p.Enc.EncodePNG(w, out.img)
		}); err != nil {
			return err
		}
	}
	fmt.Fprintln(p.Out, "PNG versions created successfully!")

	slog.Info("stats", "files", 3, "dir", p.Dir)
	return nil
}

// CLICmd is the generate command.
type CLICmd struct {
	Dest string `help:"Destination folder for the favicon files" default:"."`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	destDir, err := filepath.Abs(c.Dest)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(destDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = destDir

	return nil
}

func (c *CLICmd) Run() error {
	p := &Pipeline{
		Dir: c.Dest,
		Enc: DefaultEncoder(),
		Out: os.Stdout,
	}
	return p.Run()
}
