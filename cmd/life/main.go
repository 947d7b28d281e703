package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"golife/internal/record"
	"golife/internal/report"
	"golife/pkg/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q must be key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}

// multiPublisher fans a snapshot out to every publisher in order.
type multiPublisher []life.Publisher

func (m multiPublisher) Publish(s life.Snapshot) error {
	for _, p := range m {
		if err := p.Publish(s); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	recOpts := record.DefaultOptions()
	movieOpts := record.DefaultMovieOptions()
	frames := flag.String("frames", "", "directory to write one image per generation (empty disables)")
	format := flag.String("format", string(recOpts.Format), "frame format: png, bmp or tiff")
	flag.IntVar(&recOpts.Scale, "scale", recOpts.Scale, "pixels per cell in recorded frames")
	flag.BoolVar(&recOpts.Caption, "caption", recOpts.Caption, "draw the generation index above each frame")
	flag.StringVar(&movieOpts.Output, "movie", "", "assemble frames into this movie file with ffmpeg (requires -frames)")
	flag.IntVar(&movieOpts.FPS, "fps", movieOpts.FPS, "movie frame rate")
	flag.StringVar(&movieOpts.FFmpeg, "ffmpeg", movieOpts.FFmpeg, "ffmpeg binary")
	reportPath := flag.String("report", "", "write a CSV timing report to this path (empty disables)")
	verify := flag.Bool("verify", false, "re-run with the other strategy and require identical final boards")
	quiet := flag.Bool("quiet", false, "suppress per-generation progress")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	m, err := overrides.Map()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Apply(m); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %v", w)
	}
	if movieOpts.Output != "" && *frames == "" {
		log.Fatal("-movie requires -frames")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim, err := life.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("initialize: %v", err)
	}

	var pubs multiPublisher
	var rec *record.Recorder
	if *frames != "" {
		f, err := record.ParseFormat(*format)
		if err != nil {
			log.Fatal(err)
		}
		recOpts.Dir, recOpts.Format = *frames, f
		if rec, err = record.NewRecorder(ctx, recOpts); err != nil {
			log.Fatal(err)
		}
		pubs = append(pubs, rec)
	}
	if !*quiet {
		pubs = append(pubs, life.PublisherFunc(func(s life.Snapshot) error {
			fmt.Printf("Timestep: %d\r", s.Generation)
			return nil
		}))
	}

	start := time.Now()
	final, runErr := sim.Run(ctx, pubs)
	elapsed := time.Since(start)
	if !*quiet {
		fmt.Println()
	}
	if rec != nil {
		if err := rec.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}
	switch {
	case errors.Is(runErr, context.Canceled):
		log.Printf("interrupted at generation %d", sim.Generation())
	case runErr != nil:
		log.Fatalf("run: %v", runErr)
	}

	fmt.Printf("Generation %d: %d of %d cells alive (%s)\n", sim.Generation(), final.Population(), cfg.Dim*cfg.Dim, sim.Strategy().Name())
	fmt.Printf("Evaluation time: %s\n", elapsed.Round(time.Microsecond))

	if *verify && runErr == nil {
		if err := verifyAgainstOther(ctx, cfg, final); err != nil {
			log.Fatalf("verify: %v", err)
		}
		fmt.Println("Verified: strategies agree")
	}

	if *reportPath != "" {
		host, err := report.CollectHost(ctx)
		if err != nil {
			log.Printf("warning: %v", err)
		}
		run := report.Run{
			Dim:        cfg.Dim,
			Steps:      sim.Generation(),
			Seed:       cfg.Seed,
			Density:    cfg.Density,
			Strategy:   sim.Strategy().Name(),
			Workers:    cfg.Workers,
			Elapsed:    elapsed,
			Population: final.Population(),
			Host:       host,
		}
		if err := report.WriteFile(*reportPath, []report.Run{run}); err != nil {
			log.Fatalf("report: %v", err)
		}
	}

	if movieOpts.Output != "" && runErr == nil {
		movieOpts.Dir, movieOpts.Format = recOpts.Dir, recOpts.Format
		if err := record.MakeMovie(ctx, movieOpts); err != nil {
			log.Fatalf("movie: %v", err)
		}
		fmt.Printf("Wrote %s\n", movieOpts.Output)
	}
}

func verifyAgainstOther(ctx context.Context, cfg life.Config, final *life.Grid) error {
	other := cfg
	other.Strategy = life.StrategyNaive
	if cfg.Strategy == life.StrategyNaive {
		other.Strategy = life.StrategyConvolutional
	}
	sim, err := life.NewSimulation(other)
	if err != nil {
		return err
	}
	got, err := sim.Run(ctx, nil)
	if err != nil {
		return err
	}
	diff, err := final.Diff(got)
	if err != nil {
		return err
	}
	if diff != 0 {
		return fmt.Errorf("%s and %s differ in %d cells", cfg.Strategy, other.Strategy, diff)
	}
	return nil
}
