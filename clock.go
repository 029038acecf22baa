package progstore

import "time"

// Clock supplies the timestamp stamped onto entries at write time. Injected
// so tests can pin time exactly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
