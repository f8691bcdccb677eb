package cli

import (
	"fmt"

	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file against its JSON schema",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	config.Load()

	path := config.OutputPath()
	if len(args) == 1 {
		path = args[0]
	}

	result, err := catalog.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}

	if result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid catalog\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "(root)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s [%s]\n", loc, issue.Message, issue.Keyword)
	}
	return fmt.Errorf("catalog %s failed schema validation", path)
}
