package daf

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
)

// Registry holds calculators by cycle name.
type Registry struct {
	mu          sync.RWMutex
	calcs       map[string]*Calculator
	fingerprint string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{calcs: make(map[string]*Calculator)}
}

// DefaultRegistry returns a registry holding the Bavli and Yerushalmi cycles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Cycle{Bavli(), Yerushalmi()} {
		if err := r.Add(c); err != nil {
			panic(fmt.Sprintf("daf: built-in cycle: %v", err))
		}
	}
	return r
}

// Add validates c and registers it, replacing any cycle of the same name.
func (r *Registry) Add(c Cycle) error {
	calc, err := NewCalculator(c)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calcs[c.Name] = calc
	r.fingerprint = r.hashCycles()
	return nil
}

// Fingerprint identifies the registered cycles and their definitions.
// Two registries holding the same cycles share a fingerprint.
func (r *Registry) Fingerprint() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fingerprint
}

// hashCycles must be called with r.mu held.
func (r *Registry) hashCycles() string {
	names := make([]string, 0, len(r.calcs))
	for name := range r.calcs {
		names = append(names, name)
	}
	sort.Strings(names)

	hasher := fnv.New64a()
	for _, name := range names {
		c := r.calcs[name].cycle
		fmt.Fprintf(hasher, "%s|%d|%T", c.Name, int64(c.Start), c.NoReading)
		_, _ = hasher.Write([]byte{0})
		for _, v := range c.Volumes {
			fmt.Fprintf(hasher, "%s|%d|%d", v.Name, v.Pages, v.FirstFolio)
			_, _ = hasher.Write([]byte{0})
		}
	}
	return strconv.FormatUint(hasher.Sum64(), 16)
}

// Get returns the calculator registered under name.
func (r *Registry) Get(name string) (*Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	calc, ok := r.calcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCycle, name)
	}
	return calc, nil
}

// Names returns the registered cycle names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.calcs))
	for name := range r.calcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadInto reads cycle overrides from path and adds them to r.
func (r *Registry) LoadInto(path string) (int, error) {
	cycles, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	for _, c := range cycles {
		if err := r.Add(c); err != nil {
			return 0, err
		}
	}
	return len(cycles), nil
}
