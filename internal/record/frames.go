// Package record writes simulation snapshots to per-generation image files
// and assembles them into a movie with ffmpeg.
package record

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golife/internal/render"
	"golife/pkg/life"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/semaphore"
)

// Format selects the frame encoder.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPNG, FormatBMP, FormatTIFF:
		return f, nil
	}
	return "", fmt.Errorf("unknown frame format %q (want png, bmp or tiff)", s)
}

// Ext returns the file extension, without the dot.
func (f Format) Ext() string { return string(f) }

func (f Format) encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// Options configures a Recorder.
type Options struct {
	Dir      string
	Format   Format
	Scale    int
	Caption  bool
	Parallel int
}

// DefaultOptions returns the standard recorder options.
func DefaultOptions() Options {
	return Options{Dir: "frames", Format: FormatPNG, Scale: 2, Caption: true, Parallel: 4}
}

const captionHeight = 18

// Recorder is a life.Publisher that encodes every snapshot to
// Dir/frame<generation>.<ext>. Encoding runs in the background with at most
// Parallel frames in flight; Close waits for them.
type Recorder struct {
	opts Options
	ctx  context.Context
	sem  *semaphore.Weighted
	wg   sync.WaitGroup

	mu     sync.Mutex
	err    error
	frames int
}

// NewRecorder creates the frame directory and returns a Recorder.
func NewRecorder(ctx context.Context, opts Options) (*Recorder, error) {
	if opts.Dir == "" {
		return nil, errors.New("record: frame directory is required")
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return &Recorder{opts: opts, ctx: ctx, sem: semaphore.NewWeighted(int64(opts.Parallel))}, nil
}

// Path returns the file a generation is written to.
func (r *Recorder) Path(gen int) string {
	return FramePath(r.opts.Dir, r.opts.Format, gen)
}

// FramePath returns dir/frame<gen>.<ext>.
func FramePath(dir string, f Format, gen int) string {
	return filepath.Join(dir, fmt.Sprintf("frame%d.%s", gen, f.Ext()))
}

// Publish schedules s for encoding. It returns the first error seen by an
// earlier frame so the run aborts promptly.
func (r *Recorder) Publish(s life.Snapshot) error {
	if err := r.firstErr(); err != nil {
		return err
	}
	if err := r.sem.Acquire(r.ctx, 1); err != nil {
		return err
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		if err := r.write(s); err != nil {
			r.setErr(fmt.Errorf("record generation %d: %w", s.Generation, err))
			return
		}
		r.mu.Lock()
		r.frames++
		r.mu.Unlock()
	}()
	return nil
}

// Close waits for pending frames and returns the first encoding error.
func (r *Recorder) Close() error {
	r.wg.Wait()
	return r.firstErr()
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) firstErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Recorder) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

func (r *Recorder) write(s life.Snapshot) (err error) {
	img := Frame(s, r.opts.Scale, r.opts.Caption)
	f, err := os.Create(r.Path(s.Generation))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return r.opts.Format.encode(f, img)
}

// Frame draws a snapshot with live cells in black on white. With caption
// set, a "Timestep: N" band is added above the board.
func Frame(s life.Snapshot, scale int, caption bool) *image.RGBA {
	n := s.Grid.Dim()
	board := render.Image(s.Grid.Cells(), n, n, scale, color.Black, color.White)
	if !caption {
		return board
	}
	b := board.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, b.Add(image.Pt(0, captionHeight)), board, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, captionHeight-5),
	}
	d.DrawString(fmt.Sprintf("Timestep: %d", s.Generation))
	return img
}
