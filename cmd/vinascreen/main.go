package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/moldock/vinascreen/internal/adapters/csvsink"
	fsadapter "github.com/moldock/vinascreen/internal/adapters/fs"
	"github.com/moldock/vinascreen/internal/adapters/vina"
	"github.com/moldock/vinascreen/internal/app"
	"github.com/moldock/vinascreen/internal/cliconfig"
	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/internal/ports"
	"github.com/moldock/vinascreen/pkg/log"
)

const helpBanner = `
____   ____ __                  _________
\   \ /   /|__| ____ _____     /   _____/ ___________   ____   ____   ____
 \   Y   / |  |/    \\__  \    \_____  \_/ ___\_  __ \_/ __ \_/ __ \ /    \
  \     /  |  |   |  \/ __ \_  /        \  \___|  | \/\  ___/\  ___/|   |  \
   \___/   |__|___|  (____  / /_______  /\___  >__|    \___  >\___  >___|  /
                   \/     \/          \/     \/            \/     \/     \/
`

const helpDescription = `
Batch-dock a directory of ligand structures against a fixed receptor.

Highlights:
  - Runs the docking tool once per ligand and collects the best affinity.
  - One bad ligand never aborts the batch: failures land as Error or N/A rows.
  - Every committed row and every audit line is synced to stable storage.
  - Grid box via prompts, flags, VINASCREEN_* env, or a TOML config file.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  vinascreen --ligand-dir ./ligands --center-x 12.5 --center-y -4.0 --center-z 7.25 --size-x 20 --size-y 20 --size-z 20
  vinascreen --config screen.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "vinascreen",
		Short:   "Batch-dock a directory of ligands and collect best binding affinities",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(helpBanner))
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(helpDescription))

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			for _, name := range domain.GridParamNames {
				flag := strings.ReplaceAll(name, "_", "-")
				if changed[flag] {
					cfg.GridResolved[name] = true
				}
			}

			// Load config file first, then env, flag values stay on top
			cfgFile := cfgPath
			if cfgFile == "" && cliconfig.FileExists(cliconfig.DefaultConfigFile) {
				cfgFile = cliconfig.DefaultConfigFile
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file (default: ./vinascreen.toml when present)")
	root.Flags().StringVar(&cfg.Receptor, "receptor", cfg.Receptor, "receptor structure file")
	root.Flags().StringVar(&cfg.LigandDir, "ligand-dir", cfg.LigandDir, "directory of ligand .pdbqt files to dock")
	root.Flags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for docked output structures")
	root.Flags().StringVar(&cfg.ScoresPath, "scores", cfg.ScoresPath, "result table CSV path (recreated per run)")
	root.Flags().StringVar(&cfg.TranscriptPath, "transcript", cfg.TranscriptPath, "raw tool output mirror (recreated per run)")
	root.Flags().StringVar(&cfg.AuditLogPath, "audit-log", cfg.AuditLogPath, "audit log path (appended across runs)")
	root.Flags().StringVar(&cfg.VinaBin, "vina-bin", cfg.VinaBin, "docking tool executable")
	root.Flags().IntVar(&cfg.Exhaustiveness, "exhaustiveness", cfg.Exhaustiveness, "tool search-effort parameter")
	root.Flags().DurationVar(&cfg.ToolTimeout, "tool-timeout", cfg.ToolTimeout, "per-ligand tool timeout (0 = no timeout)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and dock ligand files as they appear")

	root.Flags().Float64Var(&cfg.Grid.CenterX, "center-x", 0, "grid box center, x axis")
	root.Flags().Float64Var(&cfg.Grid.CenterY, "center-y", 0, "grid box center, y axis")
	root.Flags().Float64Var(&cfg.Grid.CenterZ, "center-z", 0, "grid box center, z axis")
	root.Flags().Float64Var(&cfg.Grid.SizeX, "size-x", 0, "grid box size, x axis")
	root.Flags().Float64Var(&cfg.Grid.SizeY, "size-y", 0, "grid box size, y axis")
	root.Flags().Float64Var(&cfg.Grid.SizeZ, "size-z", 0, "grid box size, z axis")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vinascreen:", err)
		os.Exit(1)
	}
}

// run performs one batch: bootstrap, grid resolution, sink setup, and the
// engine loop. Any returned error is a fatal/setup condition; it is the last
// thing logged and the process exits non-zero.
func run(cmd *cobra.Command, cfg cliconfig.Config) error {
	logger, closeAudit, err := log.NewAuditLogger(cfg.AuditLogPath)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer closeAudit()

	fatal := func(err error) error {
		logger.Error("fatal", log.Err(err))
		return err
	}

	// Create the docked-output directory if absent.
	if _, statErr := os.Stat(cfg.OutputDir); os.IsNotExist(statErr) {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fatal(fmt.Errorf("create output dir: %w", err))
		}
		logger.Info("created output directory", log.String("dir", cfg.OutputDir))
	}

	// Prompt for any grid parameter not covered by flag, env, or file.
	if err := cliconfig.ResolveGrid(&cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger); err != nil {
		return fatal(fmt.Errorf("grid input: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return fatal(err)
	}

	trans, err := fsadapter.OpenTranscript(cfg.TranscriptPath)
	if err != nil {
		return fatal(fmt.Errorf("open transcript: %w", err))
	}
	defer trans.Close()

	sink, err := csvsink.Open(cfg.ScoresPath)
	if err != nil {
		return fatal(fmt.Errorf("open score table: %w", err))
	}
	defer sink.Close()
	logger.Info("score table opened and header written", log.String("path", cfg.ScoresPath))

	var source ports.LigandSource
	if cfg.Watch {
		source = fsadapter.NewWatchSource(cfg.LigandDir)
	} else {
		source = fsadapter.NewDirScanner(cfg.LigandDir)
	}

	invoker := vina.New(vina.Config{
		Bin:            cfg.VinaBin,
		Receptor:       cfg.Receptor,
		OutputDir:      cfg.OutputDir,
		Exhaustiveness: cfg.Exhaustiveness,
		Timeout:        cfg.ToolTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting batch",
		log.String("receptor", cfg.Receptor),
		log.String("ligand_dir", cfg.LigandDir),
		log.Any("watch", cfg.Watch))

	screener := app.New(source, invoker, sink, trans, logger, cfg.Grid)
	if _, err := screener.Run(ctx); err != nil {
		return fatal(err)
	}

	logger.Info("run completed", log.String("scores", cfg.ScoresPath))
	return nil
}
