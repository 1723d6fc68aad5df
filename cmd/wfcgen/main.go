// Command wfcgen loads a prototype catalog and run parameters from a YAML
// config file, runs the WFC solver once, and prints the resulting grid.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/boundary"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/catalog"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/config"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/gridspace"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/result"
	"github.com/TragicallyProgrammed/WaveFunctionCollapseDemo/internal/solver"
)

func main() {
	var cfgPath string
	var seed int64
	var format string
	flag.StringVar(&cfgPath, "config", "", "path to a wfcgen YAML configuration file")
	flag.Int64Var(&seed, "seed", 0, "override the configured RNG seed (0 keeps the config value)")
	flag.StringVar(&format, "format", "text", "output format: text or json")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if seed != 0 {
		cfg.Run.Seed = seed
	}

	cat, err := catalog.Build(cfg.RawPrototypes())
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}

	rules, ok := boundary.Named(cfg.Boundary)
	if !ok {
		log.Fatalf("unknown boundary rule set %q", cfg.Boundary)
	}
	var hook gridspace.Hook
	if rules != nil {
		hook = gridspace.ApplyRules(rules)
	}

	s, err := solver.New(solver.Config{
		Catalog:          cat,
		W:                cfg.Grid.Width,
		D:                cfg.Grid.Depth,
		H:                cfg.Grid.Height,
		PropagationDepth: cfg.Run.PropagationDepth,
		RetryCount:       cfg.Run.RetryCount,
		Seed:             cfg.Run.Seed,
		Hook:             hook,
	})
	if err != nil {
		log.Fatalf("configure solver: %v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	grid, err := s.Generate(ctx)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	res := result.Extract(grid)
	if err := printResult(res, format); err != nil {
		log.Fatalf("print result: %v", err)
	}
}

func printResult(res result.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
		for _, p := range res.Cells {
			fmt.Printf("(%d,%d,%d) -> prototype %d rotation %d\n", p.X, p.Z, p.Y, p.PrototypeID, p.Rotation)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}

		time.AfterFunc(10*time.Second, func() {
			log.Printf("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	return ctx, cancel
}
