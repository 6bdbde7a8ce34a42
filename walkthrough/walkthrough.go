// Package walkthrough exercises every container the way a reader would try
// them by hand, recording each check on an assertion.Checker.
package walkthrough

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/tedmax100/go-structures/assertion"
	"github.com/tedmax100/go-structures/assoc"
	"github.com/tedmax100/go-structures/diag"
	"github.com/tedmax100/go-structures/item"
	"github.com/tedmax100/go-structures/queue"
	"github.com/tedmax100/go-structures/stack"
)

// Run checks the stack, then the queue, then the associative array.
// Key misses go to r.
func Run(c *assertion.Checker, r diag.Reporter) {
	runStack(c)
	runQueue(c)
	runAssociativeArray(c, r)
}

func runStack(c *assertion.Checker) {
	st := stack.New()
	c.Equal(st.IsEmpty(), true, "Stack is empty on creation")

	st.AddItem(item.Number(3))
	c.Equal(st.IsEmpty(), false, "Stack is not empty after one item added")

	i, _ := st.PeekLastItem()
	c.Equal(i, item.Number(3), "Peeking last item gets us the last item")
	c.Equal(st.IsEmpty(), false, "Stack is not emptied by peeking")

	i2, _ := st.GetLastItem()
	c.Equal(i2, item.Number(3), "Stack returns last item on getLastItem")
	c.Equal(st.IsEmpty(), true, "Stack is empty after popping last item")

	_, err := st.GetLastItem()
	c.Equal(errors.Is(err, stack.ErrEmpty), true, "Stack reports an empty container on getLastItem")
}

func runQueue(c *assertion.Checker) {
	qu := queue.New()
	c.Equal(qu.IsEmpty(), true, "Queue is empty on creation")

	qu.AddItem(item.Number(3))
	c.Equal(qu.IsEmpty(), false, "Queue is not empty after one item added")

	j, _ := qu.PeekFirstItem()
	c.Equal(j, item.Number(3), "Peeking first item gets us the first item")
	c.Equal(qu.IsEmpty(), false, "Queue is not emptied by peeking")

	j2, _ := qu.GetFirstItem()
	c.Equal(j2, item.Number(3), "Queue returns first item on getFirstItem")
	c.Equal(qu.IsEmpty(), true, "Queue is empty after popping last item")

	_, err := qu.GetFirstItem()
	c.Equal(errors.Is(err, queue.ErrEmpty), true, "Queue reports an empty container on getFirstItem")
}

func runAssociativeArray(c *assertion.Checker, r diag.Reporter) {
	aa := assoc.New(assoc.WithReporter(r))
	c.Equal(aa.IsEmpty(), true, "Associative Array is empty on creation")

	aa.Insert("isSuperCool", item.Bool(true))
	c.Equal(aa.IsEmpty(), false, "Associative Array is not empty after inserting one pair")

	aa.Remove("isSuperCool")
	c.Equal(aa.IsEmpty(), true, "Associative Array is empty after removing one pair")

	aa.Insert("drink", item.String("whiskey"))
	aa.Reassign("drink", item.String("tea"))
	drink := aa.Pairs()[0]
	c.Equal(drink.Value, item.String("tea"), "Reassigned value replaces the old one")
	c.Equal(aa.Len(), 1, "Reassign keeps the number of pairs")

	v, _ := aa.Lookup(drink.Key)
	c.Equal(v, drink.Value, "The value returned matches the key you looked up")

	empty := assoc.New(assoc.WithReporter(r))
	missing, found := empty.Lookup("missing")
	c.Equal(found, false, "Lookup of a missing key reports not found")
	c.Equal(missing, nil, "Lookup of a missing key returns no value")
}

// Markdown renders results as a numbered table followed by a summary line.
func Markdown(results []assertion.Result) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Data structures walkthrough\n\n")
	buf.WriteString("| # | Check | Result |\n")
	buf.WriteString("| --- | --- | --- |\n")

	failed := 0
	for i, r := range results {
		status := "pass"
		if !r.Passed {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(&buf, "| %d | %s | %s |\n", i+1, strings.ReplaceAll(r.Message, "|", `\|`), status)
	}

	fmt.Fprintf(&buf, "\n%d checks, %d failed\n", len(results), failed)
	return buf.Bytes()
}

// HTML converts a Markdown report to an HTML fragment.
func HTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, p, renderer)
}
