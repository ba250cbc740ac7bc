package cpu

import (
	"syspulse/internal/logger"
)

// ticks is one cumulative reading of the OS time counters, in jiffies since
// boot. kernel includes idle time, so kernel+user spans the whole interval.
type ticks struct {
	idle   uint64
	kernel uint64
	user   uint64
}

// Collector differences two successive tick readings to produce a usage
// percentage. The last* counters hold exactly one previous reading; all
// three are zero until the baseline is established. Not safe for concurrent
// use.
type Collector struct {
	log  logger.Logger
	read func() (ticks, error)

	lastIdle   uint64
	lastKernel uint64
	lastUser   uint64
}
