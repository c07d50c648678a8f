package limiters

import (
	"math"

	"golang.org/x/time/rate"
)

// DefaultBurst lets a whole metadata record through in one wait.
const DefaultBurst = 64 << 10

const maxBurst = math.MaxInt32

// NewNetworkLimiter returns a limiter for bytesPerSecond, or nil when limiting is disabled.
// The burst is capped at maxBurst.
func NewNetworkLimiter(bytesPerSecond int64) *rate.Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}
	burst := maxBurst
	if bytesPerSecond < maxBurst-DefaultBurst {
		burst = int(bytesPerSecond) + DefaultBurst
	}
	return rate.NewLimiter(rate.Limit(bytesPerSecond), burst)
}
