package sort_suite

import (
	"fmt"
	"sort"
	str "strings"

	"github.com/xrash/smetrics"
)

// Algorithm is the closed set of sorts the suite knows about.
type Algorithm uint8

const (
	Bubble Algorithm = iota + 1
	Selection
	Insertion
	Merge
	Quick
	Heap
	Tim
)

// PresentationOrder is the order benchmark reports list algorithms in. It is
// independent of how the registry stores them.
var PresentationOrder = []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap, Tim}

var algorithmNames = map[Algorithm]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
	Tim:       "tim",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// suggestDistance is the largest edit distance still worth a "did you mean".
const suggestDistance = 2

// ParseAlgorithm maps a name to its Algorithm. Matching ignores case and
// surrounding space.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := str.ToLower(str.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}

	if hint := suggest(key); hint != "" {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownAlgorithm, name, hint)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

func suggest(key string) string {
	best, bestDist := "", suggestDistance+1
	for _, a := range PresentationOrder {
		name := a.String()
		if d := smetrics.WagnerFischer(key, name, 1, 1, 2); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// SortFunc is the signature shared by every algorithm. It must return a new
// slice and leave its argument untouched.
type SortFunc func([]int) []int

type Descriptor struct {
	Algorithm Algorithm
	Label     string
	Sort      SortFunc
	Stable    bool
	InPlace   bool
}

func (d *Descriptor) Name() string {
	return d.Algorithm.String()
}

// Implemented reports whether the slot has a sort behind it.
func (d *Descriptor) Implemented() bool {
	return d.Sort != nil
}

type Registry struct {
	entries map[Algorithm]*Descriptor
}

func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{entries: make(map[Algorithm]*Descriptor, len(descriptors))}
	for i := range descriptors {
		d := descriptors[i]
		r.entries[d.Algorithm] = &d
	}
	return r
}

var defaultRegistry = NewRegistry(
	Descriptor{Algorithm: Bubble, Label: "Bubble Sort", Sort: BubbleSort, InPlace: true},
	Descriptor{Algorithm: Selection, Label: "Selection Sort", Sort: SelectionSort, InPlace: true},
	Descriptor{Algorithm: Insertion, Label: "Insertion Sort", Sort: InsertionSort, Stable: true, InPlace: true},
	Descriptor{Algorithm: Merge, Label: "Merge Sort", Sort: MergeSort, Stable: true},
	Descriptor{Algorithm: Quick, Label: "Quick Sort", Sort: QuickSort},
	Descriptor{Algorithm: Heap, Label: "Heap Sort", Sort: HeapSort, InPlace: true},
	Descriptor{Algorithm: Tim, Label: "Tim Sort", Sort: TimSort, Stable: true},
)

// DefaultRegistry returns the registry holding every algorithm in the suite.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup resolves a name. Names outside the enumeration and names the
// registry has no slot for both fail with ErrUnknownAlgorithm.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	a, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return r.Get(a)
}

func (r *Registry) Get(a Algorithm) (*Descriptor, error) {
	d, ok := r.entries[a]
	if !ok {
		return nil, fmt.Errorf("%w %q: not registered", ErrUnknownAlgorithm, a.String())
	}
	return d, nil
}

// Resolve looks up every name, failing on the first bad one. No names means
// every registered algorithm in PresentationOrder. Unimplemented slots fail
// with ErrNotImplemented.
func (r *Registry) Resolve(names ...string) ([]*Descriptor, error) {
	if len(names) == 0 {
		names = make([]string, 0, len(r.entries))
		for _, d := range r.Ordered() {
			names = append(names, d.Name())
		}
	}

	out := make([]*Descriptor, 0, len(names))
	for _, name := range names {
		d, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		if !d.Implemented() {
			return nil, fmt.Errorf("%w: %s", ErrNotImplemented, d.Name())
		}
		out = append(out, d)
	}
	return out, nil
}

// Sort runs a single algorithm by name.
func (r *Registry) Sort(name string, values []int) ([]int, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !d.Implemented() {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, d.Name())
	}
	return d.Sort(values), nil
}

// Names returns the registered lookup keys sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for a := range r.entries {
		names = append(names, a.String())
	}
	sort.Strings(names)
	return names
}

// Ordered returns the registered descriptors in PresentationOrder.
func (r *Registry) Ordered() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.entries))
	for _, a := range PresentationOrder {
		if d, ok := r.entries[a]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Unimplemented lists the slots that have no sort behind them.
func (r *Registry) Unimplemented() []string {
	var names []string
	for _, d := range r.Ordered() {
		if !d.Implemented() {
			names = append(names, d.Name())
		}
	}
	return names
}
