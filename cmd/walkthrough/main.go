package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tedmax100/go-structures/assertion"
	"github.com/tedmax100/go-structures/diag"
	"github.com/tedmax100/go-structures/walkthrough"
)

func main() {
	format := flag.String("format", "text", "report format: text, markdown or html")
	flag.Parse()

	logger := diag.NewDefaultLogger()
	defer logger.Sync() //nolint:errcheck

	failed, err := run(os.Stdout, os.Stderr, *format, diag.NewLogReporter(logger))
	if err != nil {
		logger.Error("walkthrough", zap.Error(err))
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer, format string, r diag.Reporter) (int, error) {
	switch format {
	case "text", "markdown", "html":
	default:
		return 0, fmt.Errorf("unknown format %q", format)
	}

	diagOut := stdout
	if format != "text" {
		diagOut = stderr
	}

	c := assertion.New(diagOut)
	walkthrough.Run(c, r)
	results := c.Results()

	switch format {
	case "text":
		fmt.Fprintf(stdout, "%d checks, %d failed\n", len(results), c.Failed())
	case "markdown":
		stdout.Write(walkthrough.Markdown(results))
	case "html":
		stdout.Write(walkthrough.HTML(walkthrough.Markdown(results)))
	}
	return c.Failed(), nil
}
