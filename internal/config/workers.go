package config

import (
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// alias so we can mock in tests
	runtimeNumCPU = runtime.NumCPU
	// positive values check for +Inf
	_positiveInfinity = 1
)

// ParseWorkers parses a worker count, which can be a number (e.g. 2) or a
// percentage of the available CPUs (e.g. 50%).
func ParseWorkers(raw string) (int, error) {
	if strings.HasSuffix(raw, "%") {
		percent, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, errors.Wrap(err, "invalid value for --workers. This should be a number --workers=4 or percentage of CPU cores --workers=50%")
		}
		if percent <= 0 || math.IsInf(percent, _positiveInfinity) {
			return 0, errors.Errorf("invalid percentage %v for --workers. This should be a percentage of CPU cores, between 1%% and 100%%", raw)
		}
		return int(math.Max(1, float64(runtimeNumCPU())*percent/100)), nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(err, "invalid value for --workers. This should be a positive integer greater than or equal to 1")
	}
	if i < 1 {
		return 0, errors.Errorf("invalid value %v for --workers. This should be a positive integer greater than or equal to 1", i)
	}
	return i, nil
}
