// Package cli parses the algoviz command line and runs its commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/visualizer"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Commands.
const (
	CmdSort     = "sort"
	CmdPath     = "path"
	CmdTraverse = "traverse"
	CmdServe    = "serve"
)

// Edge is one -edges entry. Undirected entries ("A-B") are run both ways.
type Edge struct {
	From, To   string
	Weight     int64
	Undirected bool
}

// Command is a parsed invocation.
type Command struct {
	Name     string
	Config   config.Config
	Algo     string
	Values   []int
	TreeSize int // random tree nodes when Values is empty
	Seed     int64
	Edges    []Edge
	Start    string
	End      string
	Strategy dijkstra.Strategy
}

const usage = `
algoviz - step-by-step sorting, shortest path and tree traversal.

Usage:
  algoviz sort     [-algo bubble|insertion|merge|quick] [-n N | -values 5,3,1] [options]
  algoviz path     -edges A>B:4,B-C:1 [-start A] [-end C] [-strategy heap|linear] [options]
  algoviz traverse [-algo bfs|dfs] [-n N | -values 50,30,70] [options]
  algoviz serve    [-addr :8080] [options]

Options:
`

// Parse processes command-line arguments. It returns the Command, a boolean
// indicating if the program should exit cleanly, or an ExitError.
// Settings come from cfg (environment) and are overridden by flags.
func Parse(args []string, cfg config.Config, output io.Writer) (*Command, bool, error) {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	name := args[0]
	switch name {
	case CmdSort, CmdPath, CmdTraverse, CmdServe:
	default:
		return nil, false, usageError("unknown command %q", name)
	}

	fs := flag.NewFlagSet("algoviz "+name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	logLevel := fs.String("log-level", cfg.LogLevel, "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log output format: text or json.")
	speed := fs.Int("speed", -1, "Pause between frames in milliseconds; -1 keeps the panel default.")
	var (
		algo, values, edges, start, end, strategy, addr *string
		n                                               *int
		seed                                            *int64
	)
	switch name {
	case CmdSort:
		algo = fs.String("algo", sorting.NameBubble, "Sorting algorithm: "+strings.Join(sorting.Names(), ", ")+".")
		n = fs.Int("n", cfg.ArrayLength, "Length of the generated array.")
		values = fs.String("values", "", "Comma separated array to sort instead of a random one.")
		seed = fs.Int64("seed", 0, "Random seed; 0 picks one from the clock.")
	case CmdPath:
		edges = fs.String("edges", "", "Comma separated edges: A>B:4 is directed, A-B:4 both ways; weight defaults to 1.")
		start = fs.String("start", "", "Start node; defaults to the first node.")
		end = fs.String("end", "", "End node; defaults to the last node.")
		strategy = fs.String("strategy", dijkstra.Heap.String(), "Priority queue: heap or linear.")
	case CmdTraverse:
		algo = fs.String("algo", visualizer.TraversalBFS, "Traversal: bfs or dfs.")
		n = fs.Int("n", 7, "Number of random tree nodes.")
		values = fs.String("values", "", "Comma separated node values in insertion order.")
		seed = fs.Int64("seed", 0, "Random seed; 0 picks one from the clock.")
	case CmdServe:
		addr = fs.String("addr", cfg.Addr, "Listen address of the websocket server.")
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %v", fs.Args())
	}

	cmd := &Command{Name: name, Config: cfg}
	cmd.Config.LogLevel = strings.ToLower(*logLevel)
	cmd.Config.LogFormat = strings.ToLower(*logFormat)
	if err := logging.Validate(cmd.Config.LogLevel, cmd.Config.LogFormat); err != nil {
		return nil, false, usageError("%v", err)
	}
	if *speed >= 0 {
		d := time.Duration(*speed) * time.Millisecond
		cmd.Config.SortSpeed, cmd.Config.GraphSpeed, cmd.Config.TreeSpeed = d, d, d
	}
	if algo != nil {
		cmd.Algo = *algo
	}
	if seed != nil {
		cmd.Seed = *seed
	}
	if values != nil && *values != "" {
		vs, err := parseInts(*values)
		if err != nil {
			return nil, false, usageError("invalid -values: %v", err)
		}
		cmd.Values = vs
	}

	var err error
	switch name {
	case CmdSort:
		if _, err = sorting.Lookup[int](cmd.Algo); err != nil {
			return nil, false, usageError("%v", err)
		}
		cmd.Config.ArrayLength = *n
		if err = cmd.Config.Validate(); err != nil {
			return nil, false, usageError("invalid -n: %v", err)
		}
	case CmdPath:
		if cmd.Edges, err = parseEdges(*edges); err != nil {
			return nil, false, usageError("invalid -edges: %v", err)
		}
		if cmd.Strategy, err = dijkstra.ParseStrategy(*strategy); err != nil {
			return nil, false, usageError("%v", err)
		}
		cmd.Start, cmd.End = *start, *end
	case CmdTraverse:
		if cmd.Algo != visualizer.TraversalBFS && cmd.Algo != visualizer.TraversalDFS {
			return nil, false, usageError("unknown traversal %q", cmd.Algo)
		}
		if cmd.Values == nil {
			if *n < 1 {
				return nil, false, usageError("invalid -n: %d", *n)
			}
			cmd.TreeSize = *n
		}
	case CmdServe:
		cmd.Config.Addr = *addr
	}

	return cmd, false, nil
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseEdges reads "A>B:4,B-C" style lists.
func parseEdges(s string) ([]Edge, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("no edges given")
	}
	var out []Edge
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		e := Edge{Weight: 1}
		if pair, w, ok := strings.Cut(item, ":"); ok {
			weight, err := strconv.ParseInt(w, 10, 64)
			if err != nil || weight < 0 {
				return nil, fmt.Errorf("bad weight in %q", item)
			}
			e.Weight, item = weight, pair
		}
		from, to, ok := strings.Cut(item, ">")
		if !ok {
			from, to, ok = strings.Cut(item, "-")
			e.Undirected = true
		}
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("bad edge %q", item)
		}
		e.From, e.To = from, to
		out = append(out, e)
	}
	return out, nil
}
