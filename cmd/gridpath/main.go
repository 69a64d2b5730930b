// Command gridpath routes an agent across a grid and prints the result.
//
//	gridpath -width 30 -height 12 -ratio 0.25 -seed 7
//	gridpath -scenario testdata/detour.yaml -heuristic manhattan -watch
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/watch"
)

func init() {
	logger.Init()
}

func main() {
	var cfg config
	flag.StringVar(&cfg.scenario, "scenario", "", "Path to a YAML scenario (overrides grid generation)")
	flag.IntVar(&cfg.width, "width", 20, "Generated grid width")
	flag.IntVar(&cfg.height, "height", 10, "Generated grid height")
	flag.Float64Var(&cfg.ratio, "ratio", 0.2, "Generated obstacle ratio in [0,1)")
	flag.Int64Var(&cfg.seed, "seed", 1, "Generated grid seed")
	flag.StringVar(&cfg.heuristic, "heuristic", "", "squared-euclidean or manhattan")
	flag.StringVar(&cfg.tieBreak, "tiebreak", "", "insertion or cost-to-end")
	flag.IntVar(&cfg.maxExpansions, "max-expansions", 0, "Cap on expanded nodes (0 = none)")
	flag.BoolVar(&cfg.watch, "watch", false, "Re-run whenever the scenario file changes")
	flag.Parse()

	log := logger.Log
	if cfg.watch && cfg.scenario == "" {
		log.Fatal("-watch needs -scenario")
	}
	if err := firstRun(os.Stdout, log, cfg); err != nil {
		log.WithError(err).Fatal("gridpath failed")
	}
	if !cfg.watch {
		return
	}

	w, err := watch.New(cfg.scenario)
	if err != nil {
		log.WithError(err).Fatal("cannot watch scenario")
	}
	defer w.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	log.WithField("scenario", cfg.scenario).Info("watching for changes")

	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.WithField("file", name).Info("scenario changed")
			if err := run(os.Stdout, log, cfg); err != nil {
				log.WithError(err).Error("reload failed")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watch error")
		case <-stop:
			log.Info("Shutting down...")
			return
		}
	}
}
