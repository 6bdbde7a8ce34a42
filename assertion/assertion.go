// Package assertion checks expected against actual values and prints a
// diagnostic when they differ. It never fails the caller.
package assertion

import (
	"fmt"
	"io"
)

// Equal prints a two line diagnostic to w when got != want.
// It reports whether the values were equal.
func Equal[T comparable](w io.Writer, got, want T, message string) bool {
	if got == want {
		return true
	}
	printFailure(w, got, want, message)
	return false
}

type Result struct {
	Message string
	Got     any
	Want    any
	Passed  bool
}

// Checker runs assertions against one writer and remembers every outcome.
type Checker struct {
	out     io.Writer
	results []Result
}

func New(w io.Writer) *Checker {
	if w == nil {
		w = io.Discard
	}
	return &Checker{out: w}
}

// Equal compares got and want with ==. Values whose dynamic type cannot be
// compared are treated as unequal.
func (c *Checker) Equal(got, want any, message string) bool {
	passed := same(got, want)
	c.results = append(c.results, Result{
		Message: message,
		Got:     got,
		Want:    want,
		Passed:  passed,
	})
	if !passed {
		printFailure(c.out, got, want, message)
	}
	return passed
}

// Results returns a copy of every outcome in the order it was checked.
func (c *Checker) Results() []Result {
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}

func (c *Checker) Failed() int {
	n := 0
	for _, r := range c.results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func same(got, want any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return got == want
}

func printFailure(w io.Writer, got, want any, message string) {
	fmt.Fprintf(w, "Assertion Failed: %s\n", message)
	fmt.Fprintf(w, "%v does not equal %v\n", got, want)
}
