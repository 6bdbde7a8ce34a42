// Package stack is a LIFO container of items.
package stack

import (
	"errors"
	"fmt"

	"github.com/tedmax100/go-structures/item"
)

// ErrEmpty is returned when reading from a stack with no items.
var ErrEmpty = errors.New("stack is empty")

// Stack keeps items in a slice whose end is the top.
// The zero value is an empty stack ready to use.
type Stack struct {
	values []item.Item
}

func New() *Stack {
	return &Stack{}
}

// AddItem puts it on top of the stack.
func (s *Stack) AddItem(it item.Item) {
	s.values = append(s.values, it)
}

// GetLastItem removes and returns the most recently added item.
func (s *Stack) GetLastItem() (item.Item, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("get last item: %w", ErrEmpty)
	}

	index := len(s.values) - 1
	el := s.values[index]
	s.values[index] = nil
	s.values = s.values[:index]
	return el, nil
}

// PeekLastItem returns the most recently added item and leaves it in place.
func (s *Stack) PeekLastItem() (item.Item, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("peek last item: %w", ErrEmpty)
	}
	return s.values[len(s.values)-1], nil
}

func (s *Stack) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *Stack) Len() int {
	return len(s.values)
}
