package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls one profiling session.
//
// Create instances with [Config.NewProfiler]. The [Config] is read when
// [Profiler.Start] is called, so flags may be parsed after creation.
type Profiler struct {
	cfg     *Config
	cpuFile *os.File
}

// Start sets the memory profile rate and starts CPU profiling if enabled.
func (p *Profiler) Start() error {
	if p.cfg.MemProfileRate > 0 {
		runtime.MemProfileRate = p.cfg.MemProfileRate
	}

	if p.cfg.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.cfg.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("start cpu profile: %w", err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling and writes the heap profile if enabled. It is
// safe to call Stop without a successful Start.
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}

		p.cpuFile = nil
	}

	if p.cfg.HeapProfile != "" {
		err := writeHeap(p.cfg.HeapProfile)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}

	runtime.GC()

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write heap profile: %w", err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close heap profile: %w", err)
	}

	return nil
}
