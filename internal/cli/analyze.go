package cli

import (
	"fmt"

	"github.com/pipedex-io/pipedex/internal/analyzer"
	"github.com/pipedex-io/pipedex/internal/config"
	"github.com/pipedex-io/pipedex/internal/registry"
	"github.com/spf13/cobra"

	// Built-in node libraries register their definitions at init.
	_ "github.com/pipedex-io/pipedex/library"
)

var (
	analyzeLibraryRoot string
	analyzeManifest    string
	analyzeOutput      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the node library and write the catalog",
	Long: `Run one full analysis of the registered node library: resolve the concrete
leaf node classes, extract their parameter metadata, filter the requirements
manifest down to the libraries in use, and write the catalog JSON.

The run is all-or-nothing: on any failure no catalog file is written.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLibraryRoot, "library", "", "Dotted module root of the node library (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeManifest, "manifest", "", "Path to the requirements manifest (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "Catalog destination path (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	config.Load()

	libraryRoot := analyzeLibraryRoot
	if libraryRoot == "" {
		libraryRoot = config.LibraryRoot()
	}
	manifestPath := analyzeManifest
	if manifestPath == "" {
		manifestPath = config.ManifestPath()
	}
	outputPath := analyzeOutput
	if outputPath == "" {
		outputPath = config.OutputPath()
	}

	b := analyzer.New(registry.Default, libraryRoot, manifestPath, outputPath)
	cat, err := b.Run()
	if err != nil {
		return fmt.Errorf("analyzing node library: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cataloged %d node classes (%d dependencies) -> %s\n",
		len(cat.Nodes), len(cat.Dependencies), outputPath)
	return nil
}
