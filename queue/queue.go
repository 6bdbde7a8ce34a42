// Package queue is a FIFO container of items.
package queue

import (
	"errors"
	"fmt"

	"github.com/tedmax100/go-structures/item"
)

// ErrEmpty is returned when reading from a queue with no items.
var ErrEmpty = errors.New("queue is empty")

// Queue appends at the back of its slice and consumes from the front.
// The zero value is an empty queue ready to use.
type Queue struct {
	values []item.Item
}

func New() *Queue {
	return &Queue{}
}

// AddItem puts it at the back of the queue.
func (q *Queue) AddItem(it item.Item) {
	q.values = append(q.values, it)
}

// GetFirstItem removes and returns the oldest item still queued.
func (q *Queue) GetFirstItem() (item.Item, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("get first item: %w", ErrEmpty)
	}

	el := q.values[0]
	q.values[0] = nil // release the slot before reslicing
	q.values = q.values[1:]
	if len(q.values) == 0 {
		q.values = nil
	}
	return el, nil
}

// PeekFirstItem returns the oldest item and leaves it queued.
func (q *Queue) PeekFirstItem() (item.Item, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("peek first item: %w", ErrEmpty)
	}
	return q.values[0], nil
}

func (q *Queue) IsEmpty() bool {
	return len(q.values) == 0
}

func (q *Queue) Len() int {
	return len(q.values)
}
