// Package cmd contains all CLI commands for dinocompare.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/dinocompare/internal/config"
	"github.com/f3rmion/dinocompare/internal/dataset"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/tui"
	"github.com/f3rmion/dinocompare/internal/tui/silhouette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// logFileName is the TUI log inside the config directory.
const logFileName = "dinocompare.log"

var (
	cfgFile string
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dinocompare",
	Short: "Compare yourself to the dinosaurs",
	Long: `dinocompare asks for your name, height, weight and diet and shows
a 3x3 grid of you and eight dinosaurs.

Each dinosaur gets one random fact comparing its weight, height or
diet to yours. The pigeon keeps its own fact.

Running 'dinocompare' without arguments launches the interactive TUI.`,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE:         runUnifiedTUI,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/dinocompare)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("dataset", "", "dataset file (.json, .db or .sqlite)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("DINO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger builds a production logger writing to paths. Below --verbose
// only warnings and errors are kept.
func newLogger(verbose bool, paths ...string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.OutputPaths = paths
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := newLogger(viper.GetBool("verbose"), "stderr")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger = l
	return nil
}

// session is the configuration and dataset every command works from.
type session struct {
	cfg *config.Config
	ds  *dataset.Dataset
}

// loadSession reads config.yaml, applies flag and env overrides and loads
// the dataset with non-comparable species marked.
func loadSession() (*session, error) {
	configDir := getConfigDir()
	cfg, err := config.LoadDir(configDir)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg)

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	ds = ds.WithNonComparable(cfg.NonComparable)

	logger.Debug("session loaded",
		zap.String("config_dir", configDir),
		zap.String("dataset", ds.Source()),
		zap.Int("entries", ds.Size()),
		zap.Strings("non_comparable", cfg.NonComparable))

	return &session{cfg: cfg, ds: ds}, nil
}

// applyOverrides lets flags and DINO_* environment variables win over the file.
func applyOverrides(cfg *config.Config) {
	if v := viper.GetString("dataset"); v != "" {
		cfg.Dataset = v
	}
	if v := viper.GetString("images_dir"); v != "" {
		cfg.ImagesDir = v
	}
	if v := viper.GetString("font_path"); v != "" {
		cfg.FontPath = v
	}
	if v := viper.GetUint64("seed"); v != 0 {
		cfg.Seed = v
	}
}

// runUnifiedTUI launches the unified TUI application.
func runUnifiedTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	renderer, err := silhouette.NewRenderer(s.cfg.ImagesDir, s.cfg.FontPath)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the TUI only logs to a file.
	tuiLogger := zap.NewNop()
	if viper.GetBool("verbose") {
		configDir := getConfigDir()
		if err := config.EnsureDir(configDir); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		l, err := newLogger(true, filepath.Join(configDir, logFileName))
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer l.Sync()
		tuiLogger = l
	}

	p := tea.NewProgram(
		tui.NewApp(s.ds, s.cfg, dino.NewRand(s.cfg.Seed), renderer, tuiLogger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
