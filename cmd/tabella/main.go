// Package main provides the CLI entry point for tabella.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsawler/tabella"
	"github.com/tsawler/tabella/format"
)

var (
	outputPath string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabella [input.pdf]",
		Short: "Extract tables from PDF files into xlsx workbooks",
		Long: `tabella scans each page of a PDF for table-like text layouts and writes
every detected table to its own sheet in an xlsx workbook.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: <input>_tables.xlsx)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-page progress output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	// The extension is not trusted; sniff the content
	detected, err := format.DetectFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if detected != format.PDF {
		return fmt.Errorf("%s is not a PDF file", inputPath)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = defaultOutputPath(inputPath)
	}

	ext := tabella.Open(inputPath)
	if !quiet {
		fmt.Printf("Processing %s...\n", inputPath)
		ext = ext.Verbose(os.Stdout)
	}

	count, warnings, err := ext.SaveXLSX(outPath)
	if len(warnings) > 0 {
		fmt.Fprintln(os.Stderr, tabella.FormatWarnings(warnings))
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No tables detected in the entire PDF.")
		return nil
	}

	fmt.Printf("Tables saved to %s. Total tables extracted: %d\n", outPath, count)
	return nil
}

// defaultOutputPath derives the workbook path from the input path:
// report.pdf becomes report_tables.xlsx.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_tables.xlsx"
}
