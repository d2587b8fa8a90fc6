//go:build windows

// Package shutdown delivers OS termination signals.
package shutdown

import (
	"os"
	"os/signal"
)

// Listen returns a channel that receives interrupt signals.
func Listen() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return ch
}
