//go:build !linux

package cmd

import "log"

func countInstructions(fn func() error) error {
	log.Printf("instruction counters are only available on Linux")
	return fn()
}
