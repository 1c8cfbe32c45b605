package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/intake"
	"github.com/f3rmion/dinocompare/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a human to the dinosaurs without the TUI",
	Long: `Generate the 3x3 comparison grid and print it.

All five fields are required. Output is plain text by default; use
--format json for scripts or --format html for a static page that
references images/<species>.png.

Example:
  dinocompare compare --name Ann --feet 5 --inches 6 --weight 150 --diet omnivor
  dinocompare compare --name Ann --feet 5 --inches 6 --weight 150 --diet omnivor --format html --out grid.html`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().String(intake.FieldName, "", "your name")
	compareCmd.Flags().String(intake.FieldFeet, "", "height, feet")
	compareCmd.Flags().String(intake.FieldInches, "", "height, inches")
	compareCmd.Flags().String(intake.FieldWeight, "", "weight in lbs")
	compareCmd.Flags().String(intake.FieldDiet, "", "diet (herbavor, omnivor, carnivor)")
	compareCmd.Flags().StringP("format", "f", "text", "output format: text, json or html")
	compareCmd.Flags().Uint64("seed", 0, "fact seed for repeatable output (0 is random)")
	compareCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return err
	}

	values := make(map[string]string, len(intake.Fields))
	for _, field := range intake.Fields {
		values[field] = mustString(cmd, field)
	}

	human, err := intake.Parse(values)
	if err != nil {
		if errors.Is(err, intake.ErrIncomplete) {
			return fmt.Errorf("%s: %w", intake.RequiredMessage, err)
		}
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	seed := s.cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	tiles, err := dino.GenerateTiles(s.ds.Entries(), human, dino.NewRand(seed))
	if err != nil {
		return fmt.Errorf("generating tiles: %w", err)
	}
	logger.Debug("tiles generated",
		zap.String("name", human.Name),
		zap.Uint64("seed", seed),
		zap.String("format", string(format)))

	opts := render.Options{
		ImagesDir: s.cfg.ImagesDir,
		Title:     human.Name + " vs. the dinosaurs",
	}

	out := mustString(cmd, "out")
	if out == "" {
		return render.Write(cmd.OutOrStdout(), format, tiles, opts)
	}

	logger.Info("writing comparison", zap.String("path", out))
	return writeFile(out, func(w io.Writer) error {
		return render.Write(w, format, tiles, opts)
	})
}

// writeFile creates path, runs write against it and reports the first of the
// write and close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	return write(f)
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
