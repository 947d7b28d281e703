package record

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

// MovieOptions configures movie assembly.
type MovieOptions struct {
	FFmpeg string
	Dir    string
	Format Format
	FPS    int
	Codec  string
	Output string
}

// DefaultMovieOptions matches the frames written by DefaultOptions.
func DefaultMovieOptions() MovieOptions {
	return MovieOptions{
		FFmpeg: "ffmpeg",
		Dir:    "frames",
		Format: FormatPNG,
		FPS:    10,
		Codec:  "mpeg4",
		Output: "my_movie.mp4",
	}
}

// Args returns the ffmpeg argument list, excluding the program name.
func (o MovieOptions) Args() []string {
	pattern := filepath.Join(o.Dir, "frame%01d."+o.Format.Ext())
	return []string{
		"-r", strconv.Itoa(o.FPS),
		"-i", pattern,
		"-vcodec", o.Codec,
		"-y", o.Output,
	}
}

// MakeMovie runs ffmpeg over the recorded frames.
func MakeMovie(ctx context.Context, o MovieOptions) error {
	if o.FPS <= 0 {
		return fmt.Errorf("record: fps %d must be positive", o.FPS)
	}
	bin, err := exec.LookPath(o.FFmpeg)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin, o.Args()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("record: %s failed: %w\n%s", o.FFmpeg, err, out)
	}
	return nil
}
