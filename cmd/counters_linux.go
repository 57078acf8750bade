//go:build linux

package cmd

import (
	"log"
	"runtime"

	perf "github.com/hodgesds/perf-utils"
)

func countInstructions(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var (
		ran    bool
		runErr error
	)
	pv, err := perf.CPUInstructions(func() error {
		ran = true
		runErr = fn()
		return runErr
	})
	switch {
	case !ran:
		log.Printf("instruction counters unavailable: %v", err)
		return fn()
	case runErr != nil:
		return runErr
	case err != nil:
		log.Printf("instruction counters unavailable: %v", err)
		return nil
	}
	log.Printf("CPU instructions: %d (enabled %d ns, running %d ns)",
		pv.Value, pv.TimeEnabled, pv.TimeRunning)
	return nil
}
