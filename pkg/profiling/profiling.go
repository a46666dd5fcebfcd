// Package profiling writes CPU and heap profiles for the -cpuprofile and
// -memprofile flags.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/datatug/vitug/pkg/logging"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	memProfilingInterval  = 10 * time.Second
)

// DoCPUProfiling starts CPU profiling into path. The returned func stops it
// and is safe to call when profiling could not start.
func DoCPUProfiling(path string) (stop func()) {
	f, err := osCreate(path)
	if err != nil {
		logging.Error("could not create CPU profile", logging.String("path", path), logging.Err(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logging.Error("could not start CPU profile", logging.Err(err))
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			logging.Error("could not close CPU profile", logging.Err(err))
		}
	}
}

// DoMemProfiling rewrites a heap profile at path every memProfilingInterval
// until the returned func is called, which writes the final snapshot.
func DoMemProfiling(path string) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func(interval time.Duration) {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := writeHeapProfile(path); err != nil {
					logging.Error("periodic heap profile failed", logging.Err(err))
				}
			}
		}
	}(memProfilingInterval)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			if err := writeHeapProfile(path); err != nil {
				logging.Error("heap profile failed", logging.Err(err))
			}
		})
	}
}

func writeHeapProfile(path string) (err error) {
	f, err := osCreate(path)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	if err = pprofWriteHeapProfile(f); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return nil
}
