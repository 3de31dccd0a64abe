//go:build !race

package ffq

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
