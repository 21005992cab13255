package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/ctxlog"
	"github.com/katalvlaran/algoviz/internal/server"
	"github.com/katalvlaran/algoviz/visualizer"
)

// Run executes cmd, printing frames to out.
func Run(ctx context.Context, cmd *Command, out io.Writer, logger *slog.Logger) error {
	ctx = ctxlog.WithLogger(ctx, logger)
	if cmd.Name == CmdServe {
		return server.New(cmd.Config, logger).ListenAndServe(ctx)
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := visualizer.NewSession(
		visualizer.WithRenderer(NewTextRenderer(out)),
		visualizer.WithSeed(seed),
		visualizer.WithArrayLength(cmd.Config.ArrayLength),
		visualizer.WithStrategy(cmd.Strategy),
		visualizer.WithSpeed(visualizer.PanelSort, cmd.Config.SortSpeed),
		visualizer.WithSpeed(visualizer.PanelGraph, cmd.Config.GraphSpeed),
		visualizer.WithSpeed(visualizer.PanelTree, cmd.Config.TreeSpeed),
	)
	if err != nil {
		return err
	}

	switch cmd.Name {
	case CmdSort:
		return runSort(ctx, s, cmd, out)
	case CmdPath:
		return runPath(ctx, s, cmd)
	case CmdTraverse:
		return runTraverse(ctx, s, cmd)
	}
	return usageError("unknown command %q", cmd.Name)
}

func runSort(ctx context.Context, s *visualizer.Session, cmd *Command, out io.Writer) error {
	if cmd.Values != nil {
		if err := s.SetArray(cmd.Values); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "original %v\n", s.OriginalArray())
	_, err := s.RunSort(ctx, cmd.Algo)
	return err
}

func runPath(ctx context.Context, s *visualizer.Session, cmd *Command) error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range cmd.Edges {
		for _, id := range []string{e.From, e.To} {
			if !g.HasVertex(id) {
				if err := g.AddVertex(id); err != nil {
					return err
				}
			}
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return usageError("edge %s→%s: %v", e.From, e.To, err)
		}
		if e.Undirected {
			if _, err := g.AddEdge(e.To, e.From, e.Weight); err != nil {
				return usageError("edge %s→%s: %v", e.To, e.From, err)
			}
		}
	}
	if err := s.LoadGraph(g); err != nil {
		return err
	}
	if cmd.Start != "" {
		if err := s.SetStart(cmd.Start); err != nil {
			return usageError("-start: %v", err)
		}
	}
	if cmd.End != "" {
		if err := s.SetEnd(cmd.End); err != nil {
			return usageError("-end: %v", err)
		}
	}
	_, err := s.RunPathfinding(ctx)
	return err
}

func runTraverse(ctx context.Context, s *visualizer.Session, cmd *Command) error {
	if cmd.Values != nil {
		if err := s.LoadTree(cmd.Values); err != nil {
			return err
		}
	} else {
		for range cmd.TreeSize {
			if _, err := s.AddRandomTreeNode(); err != nil {
				return err
			}
		}
	}
	_, err := s.RunTraversal(ctx, cmd.Algo)
	return err
}
