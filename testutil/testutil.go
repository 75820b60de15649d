// Package testutil provides deterministic fixtures for catalog tests.
package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

var makes = []string{
	"Nissan", "Subaru", "Mitsubishi", "Mazda", "Ford", "Porsche", "BMW", "Volkswagen",
}

// Entries generates n distinct entry keys. Years ascend from 2000, makes
// cycle through a fixed pool, so groupings contain duplicates to exercise
// tie-breaks.
func (r *RNG) Entries(n int) []model.EntryKey {
	keys := make([]model.EntryKey, n)
	for i := 0; i < n; i++ {
		keys[i] = model.EntryKey{
			Year:  2000 + i%12,
			Make:  makes[i%len(makes)],
			Model: fmt.Sprintf("Model-%03d", i),
		}
	}
	return keys
}

// Records generates samples for one attribute of one entry: values in
// [minVal, maxVal) at ascending RPM steps of 250 starting at 2000.
func (r *RNG) Records(key model.EntryKey, attr model.Attribute, n int, minVal, maxVal float64) []model.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]model.Record, n)
	for i := 0; i < n; i++ {
		records[i] = model.Record{
			Entry:     key,
			Attribute: attr,
			Value:     minVal + r.rand.Float64()*(maxVal-minVal),
			RPM:       float64(2000 + i*250),
		}
	}
	return records
}

// Catalog builds a catalog with n entries and samplesPerAttr records for
// every attribute of every entry. Value ranges differ per attribute to
// keep extremes distinguishable.
func (r *RNG) Catalog(n, samplesPerAttr int) *catalog.Catalog {
	b := catalog.NewBuilder()
	for _, key := range r.Entries(n) {
		b.AddEntry(key)
		b.AddRecords(r.Records(key, model.AttributeHP, samplesPerAttr, 100, 600))
		b.AddRecords(r.Records(key, model.AttributeTorque, samplesPerAttr, 150, 550))
		b.AddRecords(r.Records(key, model.AttributeAFR, samplesPerAttr, 10, 16))
		b.AddRecords(r.Records(key, model.AttributeBoost, samplesPerAttr, 2, 25))
	}
	cat, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cat
}
