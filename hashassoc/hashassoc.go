// Package hashassoc is a hash-backed alternative to package assoc.
//
// It is not a drop-in replacement. Keys here are unique: Insert on an
// existing key overwrites its value, so there is no "first match" to speak
// of. Missing keys are still reported through a diag.Reporter rather than
// returned as errors.
package hashassoc

import (
	"sort"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/tedmax100/go-structures/diag"
	"github.com/tedmax100/go-structures/item"
)

type Array struct {
	store    *cache.Cache
	reporter diag.Reporter
}

type Option func(*Array)

func WithReporter(r diag.Reporter) Option {
	return func(a *Array) {
		a.reporter = r
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Array) {
		a.reporter = diag.NewLogReporter(logger)
	}
}

// New returns an empty Array. Entries never expire.
func New(opts ...Option) *Array {
	a := &Array{
		// a zero cleanup interval keeps the janitor goroutine from starting
		store: cache.New(cache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.reporter == nil {
		a.reporter = diag.NewLogReporter(diag.NewDefaultLogger())
	}
	return a
}

func (a *Array) IsEmpty() bool {
	return a.store.ItemCount() == 0
}

func (a *Array) Len() int {
	return a.store.ItemCount()
}

// Insert binds key to value, replacing any previous binding.
func (a *Array) Insert(key string, value item.Item) {
	a.store.Set(key, value, cache.NoExpiration)
}

// Reassign replaces the value of an existing key.
func (a *Array) Reassign(key string, value item.Item) bool {
	if err := a.store.Replace(key, value, cache.NoExpiration); err != nil {
		a.reporter.KeyNotFound(diag.OpReassign, key)
		return false
	}
	return true
}

func (a *Array) Remove(key string) bool {
	if _, found := a.store.Get(key); !found {
		a.reporter.KeyNotFound(diag.OpRemove, key)
		return false
	}
	a.store.Delete(key)
	return true
}

func (a *Array) Lookup(key string) (item.Item, bool) {
	v, found := a.store.Get(key)
	if !found {
		a.reporter.KeyNotFound(diag.OpLookup, key)
		return nil, false
	}
	it, _ := v.(item.Item)
	return it, true
}

// Keys returns the stored keys in sorted order.
func (a *Array) Keys() []string {
	items := a.store.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
