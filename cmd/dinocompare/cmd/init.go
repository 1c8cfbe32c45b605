package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/dinocompare/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dinocompare configuration",
	Long: `Write a default config.yaml to your config directory.

The file sets:
  - dataset         (JSON or SQLite dataset, built-in when empty)
  - images_dir      (directory with <species>.png silhouettes)
  - font_path       (TrueType font for fallback silhouettes)
  - non_comparable  (species that keep their own fact)
  - diets           (choices offered by the form)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Put <species>.png silhouettes in the images directory")
	fmt.Fprintln(out, "  2. Run 'dinocompare' to open the form")
	fmt.Fprintln(out, "  3. Run 'dinocompare compare --help' for scripted output")

	return nil
}
