package server

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/visualizer"
)

// newSession builds a one-shot session holding the panel state of p.
func newSession(cfg config.Config, p *RunPayload, r visualizer.Renderer) (*visualizer.Session, error) {
	opts := []visualizer.Option{
		visualizer.WithRenderer(r),
		visualizer.WithSpeed(visualizer.PanelSort, cfg.SortSpeed),
		visualizer.WithSpeed(visualizer.PanelGraph, cfg.GraphSpeed),
		visualizer.WithSpeed(visualizer.PanelTree, cfg.TreeSpeed),
	}
	if p.SpeedMS != nil {
		opts = append(opts, visualizer.WithSpeed(p.Panel, time.Duration(*p.SpeedMS)*time.Millisecond))
	}
	if p.Panel == visualizer.PanelGraph && p.Graph != nil && p.Graph.Strategy != "" {
		st, err := dijkstra.ParseStrategy(p.Graph.Strategy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, visualizer.WithStrategy(st))
	}
	s, err := visualizer.NewSession(opts...)
	if err != nil {
		return nil, err
	}

	switch p.Panel {
	case visualizer.PanelSort:
		err = s.SetArray(p.Array)
	case visualizer.PanelGraph:
		err = loadGraph(s, p.Graph)
	case visualizer.PanelTree:
		err = s.LoadTree(p.Tree)
	default:
		err = fmt.Errorf("unknown panel %q", p.Panel)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func loadGraph(s *visualizer.Session, gp *GraphPayload) error {
	if gp == nil {
		return fmt.Errorf("graph panel without graph")
	}
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range gp.Nodes {
		if err := g.AddVertex(id); err != nil {
			return err
		}
	}
	for _, e := range gp.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	if err := s.LoadGraph(g); err != nil {
		return err
	}
	if gp.Start != "" {
		if err := s.SetStart(gp.Start); err != nil {
			return err
		}
	}
	if gp.End != "" {
		if err := s.SetEnd(gp.End); err != nil {
			return err
		}
	}
	return nil
}

// execute runs the algorithm named by p on s.
func execute(ctx context.Context, s *visualizer.Session, p *RunPayload) error {
	var err error
	switch p.Panel {
	case visualizer.PanelSort:
		_, err = s.RunSort(ctx, p.Algorithm)
	case visualizer.PanelGraph:
		_, err = s.RunPathfinding(ctx)
	case visualizer.PanelTree:
		_, err = s.RunTraversal(ctx, p.Algorithm)
	}
	return err
}
