package record

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golife/pkg/life"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func runRecorded(t *testing.T, opts Options, steps int) *Recorder {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Dim = 16
	cfg.MaxStep = steps
	cfg.Density = 0.3
	sim, err := life.NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := NewRecorder(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sim.Run(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestRecorderWritesEveryGeneration(t *testing.T) {
	opts := DefaultOptions()
	opts.Dir = filepath.Join(t.TempDir(), "frames")
	opts.Scale = 3
	rec := runRecorded(t, opts, 4)

	if rec.Frames() != 5 {
		t.Fatalf("wrote %d frames, expected 5", rec.Frames())
	}
	for gen := 0; gen <= 4; gen++ {
		f, err := os.Open(rec.Path(gen))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d: %v", gen, err)
		}
		b := img.Bounds()
		if b.Dx() != 48 || b.Dy() != 48+captionHeight {
			t.Fatalf("frame %d bounds %v", gen, b)
		}
	}
}

func TestRecorderFormats(t *testing.T) {
	for _, format := range []Format{FormatBMP, FormatTIFF} {
		opts := DefaultOptions()
		opts.Dir = t.TempDir()
		opts.Format = format
		opts.Caption = false
		rec := runRecorded(t, opts, 1)

		f, err := os.Open(rec.Path(1))
		if err != nil {
			t.Fatal(err)
		}
		switch format {
		case FormatBMP:
			_, err = bmp.Decode(f)
		case FormatTIFF:
			_, err = tiff.Decode(f)
		}
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
	}
}

func TestFrameDrawsLiveCellsBlack(t *testing.T) {
	g, err := life.Parse(`
#.
.#`)
	if err != nil {
		t.Fatal(err)
	}
	img := Frame(life.Snapshot{Generation: 0, Grid: g}, 1, false)
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Fatal("live cell should be black")
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r != 0xffff {
		t.Fatal("dead cell should be white")
	}

	captioned := Frame(life.Snapshot{Generation: 12, Grid: g}, 40, true)
	dark := 0
	for y := 0; y < captionHeight; y++ {
		for x := 0; x < captioned.Bounds().Dx(); x++ {
			if r, _, _, _ := captioned.At(x, y).RGBA(); r < 0x8000 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("caption band has no text")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"png", "bmp", "tiff"} {
		if _, err := ParseFormat(s); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatal("gif should be rejected")
	}
}

func TestMovieArgs(t *testing.T) {
	o := DefaultMovieOptions()
	want := []string{"-r", "10", "-i", filepath.Join("frames", "frame%01d.png"), "-vcodec", "mpeg4", "-y", "my_movie.mp4"}
	if got := o.Args(); !slices.Equal(got, want) {
		t.Fatalf("args %q, expected %q", got, want)
	}
}

func TestMakeMovieMissingBinary(t *testing.T) {
	o := DefaultMovieOptions()
	o.FFmpeg = "definitely-not-ffmpeg-on-path"
	if err := MakeMovie(context.Background(), o); err == nil {
		t.Fatal("expected an error for a missing encoder")
	}
}
