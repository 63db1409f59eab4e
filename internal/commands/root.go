package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/gpay-extractor/internal/config"
	"github.com/insightdelivered/gpay-extractor/internal/extractor"
	"github.com/insightdelivered/gpay-extractor/internal/parser"
	"github.com/insightdelivered/gpay-extractor/internal/verify"
	"github.com/insightdelivered/gpay-extractor/internal/writer"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. The root itself runs a one-shot extraction.
func NewRootCommand() *cobra.Command {
	var (
		outputPath string
		configPath string
		quiet      bool
	)

	rootCmd := &cobra.Command{
		Use:   "gpay-extractor <statement.pdf>",
		Short: "Extract transactions from a Google Pay PDF statement into JSON",
		Args:  cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0], outputPath, configPath, quiet)
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output JSON file path (default: <output_dir>/<pdf_name>.json)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress verification output")
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"path to YAML config file")

	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

func runExtract(pdfPath, outputPath, configPath string, quiet bool) error {
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", pdfPath)
	}
	if ext := strings.ToLower(filepath.Ext(pdfPath)); ext != ".pdf" {
		return fmt.Errorf("expected a .pdf file, got: %q", ext)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("Extracting transactions from: %s\n", pdfPath)

	lines, err := extractor.ExtractLines(pdfPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	period, transactions := parser.Parse(lines)
	fmt.Printf("Extracted %d transactions\n", len(transactions))

	var report *verify.Report
	if !quiet {
		report = verify.Run(transactions, period)
		fmt.Println(report.Render())
	}

	outPath := outputPath
	if outPath == "" {
		outPath = defaultOutputPath(cfg.OutputDir, pdfPath)
	}

	w := &writer.JSONWriter{}
	if err := w.WriteToFile(outPath, writer.NewResult(period, transactions)); err != nil {
		return fmt.Errorf("JSON write failed: %w", err)
	}
	fmt.Printf("\nJSON written to: %s\n", outPath)

	if report != nil && !report.OK() {
		return fmt.Errorf("%w: %d check(s) failed", verify.ErrChecksFailed, len(report.Failed))
	}
	return nil
}

// defaultOutputPath maps a statement path to <outputDir>/<stem>.json.
func defaultOutputPath(outputDir, pdfPath string) string {
	base := filepath.Base(pdfPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".json")
}
