package assertion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tedmax100/go-structures/item"
)

func TestEqual(t *testing.T) {
	t.Run("asserting on integers", func(t *testing.T) {
		buffer := bytes.Buffer{}

		assert.True(t, Equal(&buffer, 1, 1, "one is one"))
		assert.Empty(t, buffer.String())
	})

	t.Run("asserting on strings prints a diagnostic", func(t *testing.T) {
		buffer := bytes.Buffer{}

		ok := Equal(&buffer, "hello", "Grace", "greeting")

		assert.False(t, ok)
		assert.Equal(t, "Assertion Failed: greeting\nhello does not equal Grace\n", buffer.String())
	})

	t.Run("asserting on items", func(t *testing.T) {
		buffer := bytes.Buffer{}

		ok := Equal[item.Item](&buffer, item.Number(3), item.String("3"), "kinds differ")

		assert.False(t, ok)
		assert.Equal(t, "Assertion Failed: kinds differ\n3 does not equal 3\n", buffer.String())
	})
}

func TestChecker(t *testing.T) {
	t.Run("records passes and failures", func(t *testing.T) {
		buffer := bytes.Buffer{}
		c := New(&buffer)

		c.Equal(item.Bool(true), item.Bool(true), "Stack is empty on creation")
		c.Equal(item.String("whiskey"), item.String("tea"), "t is not tea")

		assert.Equal(t, 1, c.Failed())
		assert.Equal(t, []Result{
			{Message: "Stack is empty on creation", Got: item.Bool(true), Want: item.Bool(true), Passed: true},
			{Message: "t is not tea", Got: item.String("whiskey"), Want: item.String("tea"), Passed: false},
		}, c.Results())
		assert.Equal(t, "Assertion Failed: t is not tea\nwhiskey does not equal tea\n", buffer.String())
	})

	t.Run("values of different types are unequal", func(t *testing.T) {
		c := New(nil)

		assert.False(t, c.Equal(3, "3", "int vs string"))
		assert.False(t, c.Equal(item.Number(3), 3, "item vs int"))
	})

	t.Run("incomparable values do not panic", func(t *testing.T) {
		c := New(nil)

		assert.NotPanics(t, func() {
			assert.False(t, c.Equal([]int{1}, []int{1}, "slices"))
		})
		assert.Equal(t, 1, c.Failed())
	})

	t.Run("never fails the caller", func(t *testing.T) {
		buffer := bytes.Buffer{}
		c := New(&buffer)

		for i := 0; i < 3; i++ {
			c.Equal(i, -1, "mismatch")
		}

		assert.Equal(t, 3, c.Failed())
		assert.Len(t, c.Results(), 3)
	})
}
