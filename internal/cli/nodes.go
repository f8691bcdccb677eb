package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/config"
	"github.com/spf13/cobra"
)

var (
	nodesLibraryFilter string
	nodesJSON          bool
	nodesCatalogPath   string
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the nodes of a previously written catalog",
	Long:  `Load the catalog file produced by 'analyze' and print its node entries.`,
	RunE:  runNodes,
}

func init() {
	nodesCmd.Flags().StringVar(&nodesLibraryFilter, "library", "", "Filter by tag library (e.g. pandas, sklearn)")
	nodesCmd.Flags().BoolVar(&nodesJSON, "json", false, "Output in JSON format")
	nodesCmd.Flags().StringVar(&nodesCatalogPath, "catalog", "", "Catalog file to read (default from config)")
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	config.Load()

	path := nodesCatalogPath
	if path == "" {
		path = config.OutputPath()
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No catalog at %s. Run 'analyze' first.\n", path)
		return nil
	}

	nodes, err := catalog.Nodes(path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if nodesLibraryFilter != "" {
		filtered := nodes[:0]
		for _, n := range nodes {
			if n.Tags.Library == nodesLibraryFilter {
				filtered = append(filtered, n)
			}
		}
		nodes = filtered
	}

	if len(nodes) == 0 {
		if nodesLibraryFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No nodes matching --library=%s\n", nodesLibraryFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog contains no nodes.")
		}
		return nil
	}

	if nodesJSON {
		return printNodesJSON(cmd, nodes)
	}
	return printNodesTable(cmd, nodes)
}

func printNodesTable(cmd *cobra.Command, nodes []catalog.NodeRecord) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CLASS\tPACKAGE\tLIBRARY\tTYPE")
	for _, n := range nodes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ClassName, n.Package, n.Tags.Library, n.Tags.Type)
	}
	return w.Flush()
}

func printNodesJSON(cmd *cobra.Command, nodes []catalog.NodeRecord) error {
	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
