package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/agent"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
)

// Map glyphs for the rendered route.
const (
	glyphStart = 'S'
	glyphGoal  = 'G'
	glyphPath  = '*'
)

type config struct {
	scenario      string
	width, height int
	ratio         float64
	seed          int64
	heuristic     string
	tieBreak      string
	maxExpansions int
	watch         bool
}

// plan loads the scenario, or generates a grid routed corner to corner.
// Search flags are applied after the scenario's own settings.
func plan(cfg config) (*scenario.Plan, error) {
	var p *scenario.Plan
	if cfg.scenario != "" {
		s, err := scenario.Load(cfg.scenario)
		if err != nil {
			return nil, err
		}
		if p, err = s.Build(); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.scenario, err)
		}
	} else {
		start := grid.Coord{}
		goal := grid.Coord{X: cfg.width - 1, Y: cfg.height - 1}
		g, err := grid.Generate(cfg.width, cfg.height,
			grid.WithObstacleRatio(cfg.ratio),
			grid.WithSeed(cfg.seed),
			grid.WithClear(start, goal),
		)
		if err != nil {
			return nil, err
		}
		p = &scenario.Plan{Name: fmt.Sprintf("generated-%d", cfg.seed), Grid: g, Start: start, Goal: goal}
	}

	extra, err := scenario.Search{
		Heuristic:     cfg.heuristic,
		TieBreak:      cfg.tieBreak,
		MaxExpansions: cfg.maxExpansions,
	}.Options()
	if err != nil {
		return nil, err
	}
	p.Options = append(p.Options, extra...)

	return p, nil
}

// firstRun is run for the initial pass. In watch mode a broken scenario is
// logged instead of returned so that it can be fixed while watching.
func firstRun(out io.Writer, log logrus.FieldLogger, cfg config) error {
	err := run(out, log, cfg)
	if err != nil && cfg.watch {
		log.WithError(err).Error("initial run failed, waiting for changes")
		return nil
	}
	return err
}

// run plans one route, prints the map to out and logs the outcome.
// A missing route is logged, not returned.
func run(out io.Writer, log logrus.FieldLogger, cfg config) error {
	p, err := plan(cfg)
	if err != nil {
		return err
	}

	expanded := 0
	count := astar.WithOnExpand(func(grid.Coord, int, int) { expanded++ })
	walker, err := agent.New(p.Grid,
		agent.WithLogger(log),
		agent.WithSearchOptions(append(p.Options, count)...),
	)
	if err != nil {
		return err
	}
	if err := walker.Place(p.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	fields := logrus.Fields{
		"scenario": p.Name,
		"from":     p.Start.String(),
		"to":       p.Goal.String(),
	}
	reachable := 0
	countCell := bfs.WithOnVisit(func(grid.Coord, int) error {
		reachable++
		return nil
	})
	if ref, err := bfs.BFS(p.Grid, p.Start, countCell); err == nil {
		fields["reachable"] = reachable
		if ref.Reached(p.Goal) {
			fields["optimum"] = ref.Depth[p.Goal]
		}
	}

	overlay := map[grid.Coord]rune{}
	steps, err := walker.MoveTo(p.Goal)
	switch {
	case errors.Is(err, astar.ErrNotFound):
		fields["expanded"] = expanded
		log.WithFields(fields).Warn("no route")
	case err != nil:
		return err
	default:
		for _, c := range walker.Walk() {
			overlay[c] = glyphPath
		}
		fields["steps"] = steps
		fields["expanded"] = expanded
		log.WithFields(fields).Info("route found")
	}
	overlay[p.Start] = glyphStart
	overlay[p.Goal] = glyphGoal

	_, err = io.WriteString(out, grid.Render(p.Grid, overlay))
	return err
}
