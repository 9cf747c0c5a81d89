package sort_suite

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// TimingSample is one algorithm's result in a benchmark run. Samples live
// only as long as the report built from them.
type TimingSample struct {
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	Label     string        `json:"label" yaml:"label"`
	Output    []int         `json:"output,omitempty" yaml:"output,omitempty"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

type Harness struct {
	Registry *Registry
	// Verify checks every output after its timing has been taken.
	Verify bool
	Log    logrus.FieldLogger
}

func NewHarness(registry *Registry, verify bool) *Harness {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Harness{Registry: registry, Verify: verify, Log: Logger()}
}

// Run sorts input with each named algorithm, or every registered one in
// PresentationOrder when names is empty. All names are resolved before the
// first timing starts. Every algorithm receives the same original input.
func (h *Harness) Run(input []int, names ...string) ([]TimingSample, error) {
	descriptors, err := h.Registry.Resolve(names...)
	if err != nil {
		return nil, err
	}

	samples := make([]TimingSample, 0, len(descriptors))
	for _, d := range descriptors {
		start := time.Now()
		output := d.Sort(input)
		elapsed := time.Since(start)

		h.log().WithFields(logrus.Fields{
			"algorithm": d.Name(),
			"elapsed":   elapsed,
			"count":     len(input),
		}).Debug("sort finished")

		if h.Verify {
			if reason := Verify(input, output); reason != 0 {
				return nil, fmt.Errorf("%w: %s: %s", ErrVerificationFailed, d.Name(), reason)
			}
		}

		samples = append(samples, TimingSample{
			Algorithm: d.Name(),
			Label:     d.Label,
			Output:    output,
			Elapsed:   elapsed,
		})
	}
	return samples, nil
}

func (h *Harness) log() logrus.FieldLogger {
	if h.Log == nil {
		return Logger()
	}
	return h.Log
}
