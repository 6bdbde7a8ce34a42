// Package assoc is an associative array kept as a slice of key/value pairs.
//
// Every keyed operation scans the pairs in insertion order and acts on the
// first match. Insert never checks for an existing key, so duplicates are
// allowed and only the oldest one is visible to Reassign, Remove and Lookup.
//
// A missing key is reported to a diag.Reporter and the operation completes
// as a no-op. Nothing here returns an error or panics for a missing key.
package assoc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tedmax100/go-structures/diag"
	"github.com/tedmax100/go-structures/item"
)

type Pair struct {
	Key   string
	Value item.Item
}

func (p Pair) String() string {
	return fmt.Sprintf("%s, %v", p.Key, p.Value)
}

type Array struct {
	storage  []Pair
	reporter diag.Reporter
}

type Option func(*Array)

// WithReporter sends not-found diagnostics to r.
func WithReporter(r diag.Reporter) Option {
	return func(a *Array) {
		a.reporter = r
	}
}

// WithLogger sends not-found diagnostics to logger as warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Array) {
		a.reporter = diag.NewLogReporter(logger)
	}
}

// New returns an empty Array. Without options, misses are logged to stderr.
func New(opts ...Option) *Array {
	a := &Array{}
	for _, opt := range opts {
		opt(a)
	}
	if a.reporter == nil {
		a.reporter = diag.NewLogReporter(diag.NewDefaultLogger())
	}
	return a
}

func (a *Array) IsEmpty() bool {
	return len(a.storage) == 0
}

func (a *Array) Len() int {
	return len(a.storage)
}

// Insert appends a new pair.
func (a *Array) Insert(key string, value item.Item) {
	a.storage = append(a.storage, Pair{Key: key, Value: value})
}

// Reassign overwrites the value of the first pair with key.
// It reports false when no pair matches.
func (a *Array) Reassign(key string, value item.Item) bool {
	i := a.index(key)
	if i < 0 {
		a.notFound(diag.OpReassign, key)
		return false
	}
	a.storage[i].Value = value
	return true
}

// Remove deletes the first pair with key, keeping the others in order.
// It reports false when no pair matches.
func (a *Array) Remove(key string) bool {
	i := a.index(key)
	if i < 0 {
		a.notFound(diag.OpRemove, key)
		return false
	}
	copy(a.storage[i:], a.storage[i+1:])
	a.storage[len(a.storage)-1] = Pair{}
	a.storage = a.storage[:len(a.storage)-1]
	return true
}

// Lookup returns the value of the first pair with key.
// When no pair matches it returns a nil Item and false.
func (a *Array) Lookup(key string) (item.Item, bool) {
	i := a.index(key)
	if i < 0 {
		a.notFound(diag.OpLookup, key)
		return nil, false
	}
	return a.storage[i].Value, true
}

// Pairs returns a copy of the stored pairs in insertion order.
func (a *Array) Pairs() []Pair {
	out := make([]Pair, len(a.storage))
	copy(out, a.storage)
	return out
}

func (a *Array) index(key string) int {
	for i, p := range a.storage {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func (a *Array) notFound(op diag.Op, key string) {
	if a.reporter != nil {
		a.reporter.KeyNotFound(op, key)
	}
}
