package mqtt

import (
	"math"
	"math/rand"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
)

// fullJitterBackoff implements autopaho.ReconnectBackoff with exponential
// growth capped at max and full jitter, so a fleet of reconnecting clients
// does not hammer the broker in lockstep after an outage.
type fullJitterBackoff struct {
	min, max time.Duration
}

func newFullJitterBackoff(min, max time.Duration) autopaho.ReconnectBackoff {
	return &fullJitterBackoff{min: min, max: max}
}

func (b *fullJitterBackoff) Backoff(count int) time.Duration {
	if count < 0 {
		count = 0
	}
	capped := math.Min(float64(b.max), float64(b.min)*math.Pow(2, float64(count)))
	if capped <= 0 {
		return b.min
	}
	return time.Duration(rand.Int63n(int64(capped))) //nolint:gosec
}
