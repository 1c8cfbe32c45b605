package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect or export the dinosaur dataset",
	Long: `Inspect or export the dataset used for comparisons.

The built-in dataset is used unless --dataset or the config file names a
JSON file or a SQLite database.

Example:
  dinocompare dataset list
  dinocompare dataset export --sqlite dinos.db
  dinocompare --dataset dinos.db dataset list`,
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dataset entries",
	Args:  cobra.NoArgs,
	RunE:  runDatasetList,
}

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset as JSON or SQLite",
	Args:  cobra.NoArgs,
	RunE:  runDatasetExport,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetExportCmd)

	datasetListCmd.Flags().Bool("facts", false, "show each entry's fact")
	datasetExportCmd.Flags().String("sqlite", "", "write a SQLite database to this path")
	datasetExportCmd.Flags().String("json", "", "write a JSON file to this path")
}

func runDatasetList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	showFacts, _ := cmd.Flags().GetBool("facts")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source: %s (%d entries)\n\n", s.ds.Source(), s.ds.Size())
	fmt.Fprintf(out, "%-20s %10s %8s %-10s %s\n", "Species", "Weight", "Height", "Diet", "When")
	for _, e := range s.ds.Entries() {
		species := e.Species
		if e.NonComparable {
			species += " *"
		}
		fmt.Fprintf(out, "%-20s %10.1f %8.1f %-10s %s\n", species, e.Weight, e.Height, e.Diet, e.When)
		if showFacts {
			fmt.Fprintf(out, "    %s: %s\n", e.Where, e.Fact)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "* keeps its own fact")

	return nil
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	sqlitePath, _ := cmd.Flags().GetString("sqlite")
	jsonPath, _ := cmd.Flags().GetString("json")
	if sqlitePath == "" && jsonPath == "" {
		return fmt.Errorf("nothing to export: use --sqlite or --json")
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	if sqlitePath != "" {
		if err := s.ds.ExportSQLite(sqlitePath); err != nil {
			return err
		}
		logger.Info("dataset exported", zap.String("format", "sqlite"), zap.String("path", sqlitePath))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", s.ds.Size(), sqlitePath)
	}

	if jsonPath != "" {
		data, err := json.MarshalIndent(s.ds, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding dataset: %w", err)
		}
		if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("writing dataset: %w", err)
		}
		logger.Info("dataset exported", zap.String("format", "json"), zap.String("path", jsonPath))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", s.ds.Size(), jsonPath)
	}

	return nil
}
