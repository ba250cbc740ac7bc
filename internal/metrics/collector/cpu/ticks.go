package cpu

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readTicks reads the aggregate line of /proc/stat:
// "cpu user nice system idle iowait irq softirq steal ...".
// The fields are folded into the three counters the differencer works with:
// user = user+nice, idle = idle+iowait, and kernel = system+irq+softirq+steal
// plus idle, so that kernel+user covers the entire elapsed interval.
func readTicks() (ticks, error) {
	data, err := os.ReadFile("/proc/stat")
	if err != nil {
		return ticks{}, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "cpu ") {
			return parseStatLine(line)
		}
	}

	return ticks{}, fmt.Errorf("no aggregate cpu line in /proc/stat")
}

func parseStatLine(line string) (ticks, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) < 4 {
		return ticks{}, fmt.Errorf("malformed cpu line: %q", line)
	}

	vals := make([]uint64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return ticks{}, fmt.Errorf("parsing cpu field %d: %w", i, err)
		}
		vals[i] = v
	}

	user := vals[0] + vals[1]
	idle := vals[3]
	if len(vals) > 4 {
		idle += vals[4]
	}

	system := vals[2]
	for i := 5; i < len(vals) && i < 8; i++ {
		system += vals[i]
	}

	return ticks{
		idle:   idle,
		kernel: system + idle,
		user:   user,
	}, nil
}
