package utils

import (
	"fmt"
	"io"
	"time"
)

// Spinner is a terminal process indicator.
type Spinner struct {
	w        io.Writer
	stopChan chan struct{}
}

// NewSpinner instantiates a new Spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start spins the indicator next to the message until Stop is called.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{})

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(s.w, "\r%s %s", message, DecorateText(string(r), SuccessColor))
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator.
func (s *Spinner) Stop() {
	close(s.stopChan)
	fmt.Fprint(s.w, "\r")
}
