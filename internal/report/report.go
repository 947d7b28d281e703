// Package report records run timings together with the host they ran on.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Host describes the machine a run executed on.
type Host struct {
	OS       string
	Platform string
	CPUModel string
	Cores    int
	Threads  int
	MemoryMB uint64
}

// CollectHost gathers host details. Fields that cannot be read are left at
// their zero value; the returned error lists what was missing.
func CollectHost(ctx context.Context) (Host, error) {
	h := Host{OS: runtime.GOOS, Threads: runtime.NumCPU()}
	var errs []error

	if info, err := host.InfoWithContext(ctx); err == nil {
		h.Platform = info.Platform + " " + info.PlatformVersion
	} else {
		errs = append(errs, err)
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	} else if err != nil {
		errs = append(errs, err)
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		h.Cores = n
	} else {
		errs = append(errs, err)
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		h.Threads = n
	} else if err != nil {
		errs = append(errs, err)
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		h.MemoryMB = vm.Total / (1 << 20)
	} else {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return h, fmt.Errorf("report: host info incomplete: %v", errs)
	}
	return h, nil
}

// Run is the outcome of one simulation.
type Run struct {
	Dim        int
	Steps      int
	Seed       int64
	Density    float64
	Strategy   string
	Workers    int
	Elapsed    time.Duration
	Population int
	Host       Host
}

// PerStep returns the mean time per generation.
func (r Run) PerStep() time.Duration {
	if r.Steps == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Steps)
}

var header = []string{
	"dim", "steps", "seed", "density", "strategy", "workers",
	"elapsed_ms", "per_step_us", "population",
	"os", "platform", "cpu", "cores", "threads", "memory_mb",
}

// WriteCSV writes a header row followed by one row per run.
func WriteCSV(w io.Writer, runs []Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range runs {
		row := []string{
			strconv.Itoa(r.Dim),
			strconv.Itoa(r.Steps),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatFloat(r.Density, 'g', -1, 64),
			r.Strategy,
			strconv.Itoa(r.Workers),
			strconv.FormatFloat(float64(r.Elapsed)/float64(time.Millisecond), 'f', 3, 64),
			strconv.FormatFloat(float64(r.PerStep())/float64(time.Microsecond), 'f', 3, 64),
			strconv.Itoa(r.Population),
			r.Host.OS,
			r.Host.Platform,
			r.Host.CPUModel,
			strconv.Itoa(r.Host.Cores),
			strconv.Itoa(r.Host.Threads),
			strconv.FormatUint(r.Host.MemoryMB, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes runs as CSV to path, replacing any existing file.
func WriteFile(path string, runs []Run) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, runs)
}
