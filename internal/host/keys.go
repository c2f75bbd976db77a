package host

import (
	"fmt"
	"strings"

	"cubeview/internal/engine"
)

// Key repeat timing for hosts that only report held keys, in frames.
const (
	repeatDelay    = 15
	repeatInterval = 2
)

// RepeatTick reports whether a key held for d frames fires this frame, using
// the default repeat timing.
func RepeatTick(d int) bool {
	return repeatTick(d, repeatDelay, repeatInterval)
}

// repeatTick reports whether a key held for d frames should fire this frame:
// once on the first frame, then every interval frames after delay.
func repeatTick(d, delay, interval int) bool {
	if d == 1 {
		return true
	}
	if d < delay || interval <= 0 {
		return false
	}
	return (d-delay)%interval == 0
}

// ParseKeys splits a comma separated list of key names, as accepted by
// engine.HandleKey. Unknown names are an error.
func ParseKeys(s string) ([]engine.Key, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var keys []engine.Key
	for _, f := range strings.Split(s, ",") {
		k := engine.Key(strings.TrimSpace(f))
		if _, ok := engine.Lookup(k); !ok {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
