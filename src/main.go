package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"rlevator/src/config"
	"rlevator/src/env"
)

func main() {
	configPath := flag.String("config", "", "Scenario file; empty runs the built-in default scenario")
	floors := flag.Int("floors", 6, "Floors in the default scenario")
	elevators := flag.Int("elevators", 2, "Elevators in the default scenario")
	seed := flag.Uint64("seed", 1, "Seed of the first episode; episode n runs on seed+n")
	episodes := flag.Int("episodes", 1, "Episodes to run")
	steps := flag.Int("steps", 200, "Step limit per episode; 0 keeps the scenario's own limit")
	policyName := flag.String("policy", "collective", "Controller: collective or random")
	status := flag.Bool("status", false, "Print the building line by line while running")
	flag.Parse()
	initLogger()

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("Scenario rejected", "path", *configPath, "error", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default(*floors, *elevators)
	}
	if *steps > 0 {
		cfg.MaxEpisodeSteps = *steps
	}
	cfg.Seed = *seed

	e, err := env.New(cfg)
	if err != nil {
		slog.Error("Scenario rejected", "error", err)
		os.Exit(1)
	}
	slog.Info("Scenario ready",
		"floors", cfg.Floors, "elevators", len(cfg.Elevators), "policy", *policyName)

	for ep := 0; ep < *episodes; ep++ {
		runEpisode(e, buildPolicy(*policyName, e, *seed), *seed+uint64(ep), *status)
	}
}

func runEpisode(e *env.Env, pol Policy, seed uint64, status bool) {
	res, err := e.Reset(seed)
	if err != nil {
		slog.Error("Reset failed", "error", err)
		os.Exit(1)
	}
	total := 0.0
	for !res.Done {
		res, err = e.Step(pol.Act(res.Observation))
		if err != nil {
			slog.Error("Step failed", "error", err)
			os.Exit(1)
		}
		total += res.Reward
		if status {
			fmt.Println(e.Building().StatusString())
		}
	}
	tot := e.Totals()
	slog.Info("Episode finished",
		"seed", seed,
		"steps", e.Building().Timestep(),
		"reward", total,
		"delivered", tot.Delivered,
		"rejected", tot.Rejected,
		"abandoned", tot.Abandoned,
		"stranded", tot.Arrived-tot.Delivered-tot.Rejected-tot.Abandoned,
		"avgWait", tot.AvgWait())
}

func buildPolicy(name string, e *env.Env, seed uint64) Policy {
	switch name {
	case "random":
		return &randomPolicy{space: e.ActionSpace(), rng: rand.New(rand.NewSource(seed))}
	case "collective":
		return newCollectivePolicy(e.ActionSpace().Elevators)
	default:
		slog.Error("Unknown policy", "policy", name)
		os.Exit(1)
		return nil
	}
}

func initLogger() {
	logFile, err := os.OpenFile("rlevator.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		panic(err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}
