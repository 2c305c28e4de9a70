package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gradebook/gradebook/internal/config"
	"github.com/gradebook/gradebook/internal/grading"
	"github.com/gradebook/gradebook/internal/report"
	"github.com/gradebook/gradebook/internal/roster"
)

func main() {
	configPath := flag.String("config", "", "path to grading policy file; defaults apply when empty")
	rosterPath := flag.String("roster", "roster.yaml", "path to roster file")
	formatName := flag.String("format", "text", "output format: text|json|prometheus")
	watchFiles := flag.Bool("watch", false, "re-render whenever the config or roster file changes")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	format, err := report.ParseFormat(*formatName)
	if err != nil {
		slog.Error("invalid flag", "err", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}
	level.Set(cfg.Level())
	slog.Debug("config loaded",
		"config", *configPath,
		"weights", cfg.Weights,
		"drop_lowest", cfg.DropLowest,
		"scale", cfg.Scale,
	)

	r, err := roster.Load(*rosterPath, cfg.Scale)
	if err != nil {
		slog.Error("failed to load roster", "err", err)
		os.Exit(1)
	}

	st := &state{cfg: cfg, roster: r, out: os.Stdout, format: format}
	if err := st.render(); err != nil {
		slog.Error("failed to render report", "err", err)
		os.Exit(1)
	}

	if !*watchFiles {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	if *configPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				if err := st.applyConfig(updated, *rosterPath); err != nil {
					slog.Error("roster invalid under reloaded config — keeping previous config", "err", err)
					return
				}
				level.Set(updated.Level())
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := roster.Watch(ctx, *rosterPath, st.scale, func(updated *roster.Roster) {
			st.update(nil, updated)
		})
		if err != nil {
			slog.Error("roster watcher stopped", "err", err)
		}
	}()

	<-ctx.Done()
	wg.Wait()
	slog.Info("gradecalc shutting down")
}

// state is the config and roster currently rendered in -watch mode.
type state struct {
	mu     sync.Mutex
	cfg    *config.Config
	roster *roster.Roster
	out    io.Writer
	format report.Format
}

// update swaps in whichever of cfg and r is non-nil and re-renders.
func (s *state) update(cfg *config.Config, r *roster.Roster) {
	s.mu.Lock()
	if cfg != nil {
		s.cfg = cfg
	}
	if r != nil {
		s.roster = r
	}
	s.mu.Unlock()

	if err := s.render(); err != nil {
		slog.Error("failed to render report", "err", err)
	}
}

// applyConfig re-loads the roster under cfg's scale and swaps in both.
// A new scale may reject scores the old one accepted; on error the previous
// config and roster stay in effect.
func (s *state) applyConfig(cfg *config.Config, rosterPath string) error {
	r, err := roster.Load(rosterPath, cfg.Scale)
	if err != nil {
		return err
	}
	s.update(cfg, r)
	return nil
}

func (s *state) scale() grading.Scale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Scale
}

func (s *state) render() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep := report.Build(s.roster, s.cfg.Policy())
	slog.Debug("report built", "course", rep.Course, "students", len(rep.Rows), "class_average", rep.ClassAverage)
	return report.Render(s.out, rep, s.format)
}
