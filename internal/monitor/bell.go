package monitor

import (
	"fmt"
	"io"
	"time"
)

// ChimeTones are the frequencies (Hz) of the alert sequence: A5, D5, E5.
var ChimeTones = []float64{880, 587.33, 659.25}

// Bell is a terminal Alerter: one bell character per chime tone, spaced by
// Delay. The terminal cannot pitch the tones, but the cadence matches.
type Bell struct {
	W     io.Writer
	Delay time.Duration
}

func (b Bell) Play() {
	delay := b.Delay
	if delay == 0 {
		delay = 200 * time.Millisecond
	}
	for i := range ChimeTones {
		if i > 0 {
			time.Sleep(delay)
		}
		fmt.Fprint(b.W, "\a")
	}
}
