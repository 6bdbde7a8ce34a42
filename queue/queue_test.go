package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedmax100/go-structures/item"
)

func TestQueue(t *testing.T) {
	t.Run("add, peek and get a single number", func(t *testing.T) {
		qu := New()
		assert.True(t, qu.IsEmpty())

		qu.AddItem(item.Number(3))
		assert.False(t, qu.IsEmpty())

		peeked, err := qu.PeekFirstItem()
		require.NoError(t, err)
		assert.Equal(t, item.Number(3), peeked)
		assert.Equal(t, 1, qu.Len())

		got, err := qu.GetFirstItem()
		require.NoError(t, err)
		assert.Equal(t, item.Number(3), got)
		assert.True(t, qu.IsEmpty())
	})

	t.Run("items come back in insertion order", func(t *testing.T) {
		qu := New()
		in := []item.Item{item.Number(1), item.String("two"), item.Bool(true), item.Number(4)}
		for _, it := range in {
			qu.AddItem(it)
		}

		var out []item.Item
		for !qu.IsEmpty() {
			it, err := qu.GetFirstItem()
			require.NoError(t, err)
			out = append(out, it)
		}

		assert.Equal(t, in, out)
	})

	t.Run("interleaved adds and gets keep FIFO order", func(t *testing.T) {
		qu := New()
		qu.AddItem(item.Number(1))
		qu.AddItem(item.Number(2))

		first, _ := qu.GetFirstItem()
		qu.AddItem(item.Number(3))
		second, _ := qu.GetFirstItem()
		third, _ := qu.GetFirstItem()

		assert.Equal(t, item.Number(1), first)
		assert.Equal(t, item.Number(2), second)
		assert.Equal(t, item.Number(3), third)
		assert.True(t, qu.IsEmpty())
	})

	t.Run("peek never changes length or order", func(t *testing.T) {
		qu := New()
		qu.AddItem(item.String("front"))
		qu.AddItem(item.String("back"))

		for i := 0; i < 3; i++ {
			it, err := qu.PeekFirstItem()
			require.NoError(t, err)
			assert.Equal(t, item.String("front"), it)
			assert.Equal(t, 2, qu.Len())
		}
	})

	t.Run("the zero value is usable", func(t *testing.T) {
		var qu Queue
		assert.True(t, qu.IsEmpty())
		qu.AddItem(item.Bool(true))
		assert.Equal(t, 1, qu.Len())
	})
}

func TestQueueEmpty(t *testing.T) {
	t.Run("get on a new queue fails", func(t *testing.T) {
		qu := New()

		it, err := qu.GetFirstItem()

		assert.ErrorIs(t, err, ErrEmpty)
		assert.Nil(t, it)
	})

	t.Run("peek on a new queue fails", func(t *testing.T) {
		qu := New()

		it, err := qu.PeekFirstItem()

		assert.ErrorIs(t, err, ErrEmpty)
		assert.EqualError(t, err, "peek first item: queue is empty")
		assert.Nil(t, it)
	})

	t.Run("queue is reusable after draining", func(t *testing.T) {
		qu := New()
		qu.AddItem(item.Number(1))
		_, _ = qu.GetFirstItem()

		_, err := qu.GetFirstItem()
		assert.ErrorIs(t, err, ErrEmpty)

		qu.AddItem(item.Number(2))
		it, err := qu.PeekFirstItem()
		require.NoError(t, err)
		assert.Equal(t, item.Number(2), it)
	})
}
