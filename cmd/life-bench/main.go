package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golife/internal/report"
	"golife/pkg/life"
)

type scenario struct {
	dim      int
	strategy string
	workers  int
}

func (s scenario) String() string {
	return fmt.Sprintf("dim=%d strategy=%s workers=%d", s.dim, s.strategy, s.workers)
}

type scenarioResult struct {
	scenario
	elapsed time.Duration
	final   *life.Grid
	err     error
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-bench: ")

	dimList := flag.String("dims", "64,128,256", "comma-separated board sizes")
	steps := flag.Int("steps", 50, "generations to advance per scenario")
	seed := flag.Int64("seed", 42, "seed shared by every scenario")
	density := flag.Float64("density", 0.5, "initial live-cell probability")
	bands := flag.Int("bands", runtime.NumCPU(), "row bands for the parallel convolutional variant")
	workers := flag.Int("workers", 1, "scenarios run at once (keep at 1 for clean timings)")
	out := flag.String("out", "", "CSV file for results (empty disables)")
	flag.Parse()

	dims, err := parseDims(*dimList)
	if err != nil {
		log.Fatal(err)
	}
	if err := life.CheckDensity(*density); err != nil {
		log.Printf("warning: %v", err)
	}

	var sets []scenario
	for _, dim := range dims {
		sets = append(sets,
			scenario{dim: dim, strategy: life.StrategyNaive, workers: 1},
			scenario{dim: dim, strategy: life.StrategyConvolutional, workers: 1},
		)
		if *bands > 1 {
			sets = append(sets, scenario{dim: dim, strategy: life.StrategyConvolutional, workers: *bands})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d scenarios (%d at once, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(ctx, sc, *steps, *seed, *density)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range sets {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.scenario, res.err)
		}
		all = append(all, res)
		fmt.Printf("%s: %s (%s/step)\n", res.scenario, res.elapsed.Round(time.Microsecond), perStep(res.elapsed, *steps))
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].dim != all[j].dim {
			return all[i].dim < all[j].dim
		}
		return all[i].elapsed < all[j].elapsed
	})

	reference := map[int]*life.Grid{}
	for _, res := range all {
		if res.strategy == life.StrategyNaive {
			reference[res.dim] = res.final
		}
	}
	mismatches := 0
	for _, res := range all {
		want, ok := reference[res.dim]
		if !ok {
			continue
		}
		diff, err := want.Diff(res.final)
		if err != nil {
			log.Fatal(err)
		}
		if diff != 0 {
			mismatches++
			fmt.Printf("MISMATCH %s: %d cells differ from naive\n", res.scenario, diff)
		}
	}

	fmt.Printf("\nFastest per size:\n")
	seen := map[int]bool{}
	for _, res := range all {
		if seen[res.dim] {
			continue
		}
		seen[res.dim] = true
		fmt.Printf("%4d: %s in %s\n", res.dim, res.scenario, res.elapsed.Round(time.Microsecond))
	}

	if *out != "" {
		host, err := report.CollectHost(ctx)
		if err != nil {
			log.Printf("warning: %v", err)
		}
		runs := make([]report.Run, 0, len(all))
		for _, res := range all {
			runs = append(runs, report.Run{
				Dim:        res.dim,
				Steps:      *steps,
				Seed:       *seed,
				Density:    *density,
				Strategy:   res.strategy,
				Workers:    res.workers,
				Elapsed:    res.elapsed,
				Population: res.final.Population(),
				Host:       host,
			})
		}
		if err := report.WriteFile(*out, runs); err != nil {
			log.Fatal(err)
		}
	}

	if mismatches > 0 {
		os.Exit(1)
	}
}

func runScenario(ctx context.Context, sc scenario, steps int, seed int64, density float64) scenarioResult {
	cfg := life.DefaultConfig()
	cfg.Dim = sc.dim
	cfg.MaxStep = steps
	cfg.Seed = seed
	cfg.Density = density
	cfg.Strategy = sc.strategy
	cfg.Workers = sc.workers

	sim, err := life.NewSimulation(cfg)
	if err != nil {
		return scenarioResult{scenario: sc, err: err}
	}
	start := time.Now()
	final, err := sim.Run(ctx, nil)
	return scenarioResult{scenario: sc, elapsed: time.Since(start), final: final, err: err}
}

func parseDims(s string) ([]int, error) {
	var dims []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, err := strconv.Atoi(part)
		if err != nil || dim <= 0 {
			return nil, fmt.Errorf("%w: %q", life.ErrInvalidDimension, part)
		}
		dims = append(dims, dim)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no sizes given", life.ErrInvalidDimension)
	}
	return dims, nil
}

func perStep(d time.Duration, steps int) time.Duration {
	if steps <= 0 {
		return 0
	}
	return (d / time.Duration(steps)).Round(time.Microsecond)
}
