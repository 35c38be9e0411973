package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/tbribbon/edge"
	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/internal/config"
	"github.com/katalvlaran/tbribbon/internal/ctxlog"
	"github.com/katalvlaran/tbribbon/spectrum"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "ribbon",
		Usage: "Edge-state spectra of tight-binding ribbons from Wannier90 hopping files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (optional)",
				Sources: cli.EnvVars("RIBBON_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("RIBBON_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "json or text",
				Sources: cli.EnvVars("RIBBON_LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "compute",
				Usage:  "Compute one ribbon spectrum and classify its bands",
				Flags:  append(runFlags(), &cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "Ribbon width in unit cells"}),
				Action: computeAction,
			},
			{
				Name:   "sweep",
				Usage:  "Repeat compute for every configured width, loading the model once",
				Flags:  append(runFlags(), &cli.IntSliceFlag{Name: "widths", Usage: "Ribbon widths to visit"}),
				Action: sweepAction,
			},
		},
	}
}

// runFlags are shared by compute and sweep. Each call returns fresh flags.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "Path to the wannier90_hr.dat file", Sources: cli.EnvVars("RIBBON_MODEL")},
		&cli.IntFlag{Name: "nk", Usage: "Number of momentum samples"},
		&cli.StringFlag{Name: "mesh", Usage: "closed or half_open"},
		&cli.StringFlag{Name: "solver", Usage: "lapack or jacobi"},
		&cli.IntFlag{Name: "workers", Usage: "Concurrent samples (0 = one per CPU)"},
		&cli.FloatFlag{Name: "threshold", Usage: "Edge zero-proximity threshold"},
		&cli.IntFlag{Name: "probe", Usage: "Edge probe mesh index (-1 = NK/2)"},
		&cli.FloatFlag{Name: "kmin", Usage: "Reported window start, reduced units"},
		&cli.FloatFlag{Name: "kmax", Usage: "Reported window end, reduced units"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write JSON here instead of stdout"},
	}
}

var errNoModel = errors.New("model path is required (--model, RIBBON_MODEL or model.path)")

// setup loads the configuration, applies flag overrides and attaches a logger
// to the returned context.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, *config.Config, error) {
	cfg := config.NewDefaultConfig()
	// without --config the defaults apply; a named file must exist
	if cmd.IsSet("config") {
		if err := config.Load(cmd.String("config"), cfg); err != nil {
			return ctx, nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return ctx, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return ctx, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validation.Validate(cfg.Model.Path, validation.Required); err != nil {
		return ctx, nil, errNoModel
	}

	logger := newLogger(errWriter(cmd), cfg.Log)
	return ctxlog.WithLogger(ctx, logger), cfg, nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) error {
	if cmd.IsSet("log-level") {
		if err := cfg.Log.Level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("model") {
		cfg.Model.Path = cmd.String("model")
	}
	if cmd.IsSet("width") {
		cfg.Ribbon.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("widths") {
		ws := cmd.IntSlice("widths")
		cfg.Sweep.Widths = make([]int, len(ws))
		for i, w := range ws {
			cfg.Sweep.Widths[i] = int(w)
		}
	}
	if cmd.IsSet("nk") {
		cfg.Mesh.NK = int(cmd.Int("nk"))
	}
	if cmd.IsSet("mesh") {
		cfg.Mesh.Kind = cmd.String("mesh")
	}
	if cmd.IsSet("solver") {
		cfg.Solver.Kind = cmd.String("solver")
	}
	if cmd.IsSet("workers") {
		cfg.Solver.Workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("threshold") {
		cfg.Edge.Threshold = cmd.Float("threshold")
	}
	if cmd.IsSet("probe") {
		cfg.Edge.ProbeIndex = int(cmd.Int("probe"))
	}
	if cmd.IsSet("kmin") {
		cfg.Window.KMin = cmd.Float("kmin")
	}
	if cmd.IsSet("kmax") {
		cfg.Window.KMax = cmd.Float("kmax")
	}

	return nil
}

func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func computeAction(ctx context.Context, cmd *cli.Command) error {
	ctx, cfg, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	cache, err := hopping.NewCache(1)
	if err != nil {
		return err
	}
	m, err := loadModel(ctx, cache, cfg.Model.Path)
	if err != nil {
		return err
	}
	rep, err := runWidth(ctx, cfg, m, cfg.Ribbon.Width)
	if err != nil {
		return err
	}

	return writeJSON(cmd, cmd.String("out"), rep)
}

func sweepAction(ctx context.Context, cmd *cli.Command) error {
	ctx, cfg, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	if len(cfg.Sweep.Widths) == 0 {
		return errors.New("sweep: no widths configured")
	}
	cache, err := hopping.NewCache(0)
	if err != nil {
		return err
	}
	reps := make([]*report, 0, len(cfg.Sweep.Widths))
	for _, w := range cfg.Sweep.Widths {
		// the cache re-reads the file only if it changed in between
		m, err := loadModel(ctx, cache, cfg.Model.Path)
		if err != nil {
			return err
		}
		rep, err := runWidth(ctx, cfg, m, w)
		if err != nil {
			return fmt.Errorf("sweep width %d: %w", w, err)
		}
		reps = append(reps, rep)
	}

	return writeJSON(cmd, cmd.String("out"), reps)
}

func loadModel(ctx context.Context, cache *hopping.Cache, path string) (*hopping.Model, error) {
	m, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("hamiltonian loaded",
		slog.String("path", path),
		slog.Int("orbitals", m.Orbitals()),
		slog.Int("displacements", m.Len()),
		slog.Int("wigner_seitz_points", len(m.Degeneracies())))

	return m, nil
}

func newSolver(c config.SolverConfig) spectrum.Solver {
	if c.Kind == config.SolverJacobi {
		return spectrum.JacobiSolver{Tolerance: c.Tolerance, MaxSweeps: c.MaxSweeps}
	}

	return spectrum.GonumSolver{}
}

// runWidth computes, classifies and windows one ribbon width.
func runWidth(ctx context.Context, cfg *config.Config, m *hopping.Model, width int) (*report, error) {
	log := ctxlog.FromContext(ctx)
	kind, err := spectrum.ParseMeshKind(cfg.Mesh.Kind)
	if err != nil {
		return nil, err
	}
	opts := []spectrum.Option{
		spectrum.WithSolver(newSolver(cfg.Solver)),
		spectrum.WithMeshKind(kind),
		spectrum.WithHermitianTolerance(cfg.HermitianTolerance),
	}
	if cfg.Solver.Workers > 0 {
		opts = append(opts, spectrum.WithWorkers(cfg.Solver.Workers))
	}

	res, err := spectrum.Compute(ctx, m, width, cfg.Mesh.NK, opts...)
	if err != nil {
		return nil, err
	}

	classifier := edge.NewClassifier(
		edge.WithThreshold(cfg.Edge.Threshold),
		edge.WithProbeIndex(cfg.Edge.ProbeIndex),
	)
	cls, err := classifier.Classify(res.Spectrum)
	switch {
	case errors.Is(err, edge.ErrEmptySpectrum):
		log.Warn("no samples left to classify", slog.Int("width", width))
	case err != nil:
		return nil, err
	default:
		log.Info("edge bands classified",
			slog.Int("width", width),
			slog.Any("edge_bands", cls.Edges()),
			slog.Int("probe_index", classifier.ProbeIndex(cfg.Mesh.NK)))
	}

	return newReport(width, m, res, cls, res.Spectrum.Window(cfg.Window.KMin, cfg.Window.KMax)), nil
}
