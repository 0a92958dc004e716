// Package main is a command line front end to the random adjacency matrix
// generator. It prints one generated matrix followed by its edge statistics.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/graphsupply/core/internal/adjacency"
	"github.com/graphsupply/core/internal/models"
	"github.com/graphsupply/core/internal/parser"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	nodes := fs.Int("nodes", adjacency.DefaultNodes, "number of nodes (2-200)")
	density := fs.Float64("density", adjacency.DefaultDensity, "edge density in percent (0-100)")
	directed := fs.Bool("directed", false, "generate a directed graph")
	weighted := fs.Bool("weighted", false, "draw integer weights in [1, nodes]")
	loops := fs.Bool("loops", false, "allow self-loops")
	seed := fs.Uint64("seed", 0, "seed for a reproducible matrix (0 picks a random one)")
	format := fs.String("format", "text", "output format: text, csv or json")
	noColor := fs.Bool("no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	params := models.GenerationParameters{
		Nodes:    *nodes,
		Density:  *density,
		Directed: *directed,
		Weighted: *weighted,
		Loops:    *loops,
	}

	var opts []adjacency.Option
	if *seed != 0 {
		opts = append(opts, adjacency.WithSeed(*seed))
	}

	result, err := adjacency.NewGenerator(opts...).Generate(params)
	if err != nil {
		fmt.Fprintf(stderr, "generate: %v\n", err)
		if errors.Is(err, adjacency.ErrNodesOutOfRange) || errors.Is(err, adjacency.ErrDensityOutOfRange) {
			return exitUsage
		}
		return exitError
	}

	switch strings.ToLower(*format) {
	case "text":
		err = writeText(stdout, result, !*noColor)
	case "csv":
		err = parser.WriteSimple(stdout, result.Matrix)
	case "json":
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(result)
	default:
		fmt.Fprintf(stderr, "generate: unknown format %q\n", *format)
		return exitUsage
	}
	if err != nil {
		fmt.Fprintf(stderr, "generate: %v\n", err)
		return exitError
	}

	return exitOK
}

// writeText prints the matrix as aligned columns, highlighting edges, and
// then the analyzer's view of it.
func writeText(w io.Writer, result *models.GraphResult, colored bool) error {
	edge := color.New(color.FgGreen, color.Bold)
	muted := color.New(color.FgHiBlack)
	header := color.New(color.FgCyan)
	if colored {
		edge.EnableColor()
		muted.EnableColor()
		header.EnableColor()
	} else {
		edge.DisableColor()
		muted.DisableColor()
		header.DisableColor()
	}

	m := result.Matrix
	names := adjacency.NodeNames(len(m))

	width := 1
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, row := range m {
		for _, v := range row {
			width = max(width, len(adjacency.FormatEntry(v)))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width))
	for _, name := range names {
		b.WriteString(" ")
		b.WriteString(header.Sprint(pad(name, width)))
	}
	b.WriteString("\n")

	for i, row := range m {
		b.WriteString(header.Sprint(pad(names[i], width)))
		for _, v := range row {
			b.WriteString(" ")
			cell := pad(adjacency.FormatEntry(v), width)
			if v != 0 {
				b.WriteString(edge.Sprint(cell))
			} else {
				b.WriteString(muted.Sprint(cell))
			}
		}
		b.WriteString("\n")
	}

	stats := adjacency.Analyze(m)
	fmt.Fprintf(&b, "\n%s\n", result.Metadata.Message)
	fmt.Fprintf(&b, "generated edges: %s\n", adjacency.FormatEntry(result.Metadata.Edges))
	fmt.Fprintf(&b, "counted edges:   %d\n", stats.Count)
	fmt.Fprintf(&b, "directed:        %t (%s)\n", stats.Directed, stats.Message)

	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
