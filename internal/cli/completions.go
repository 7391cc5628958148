package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xsdver/internal/config"
)

var outputFormats = []string{config.OutputText, config.OutputJSON}

// completeOutputFormats provides shell completion for --output.
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range outputFormats {
		if strings.HasPrefix(f, toComplete) {
			matches = append(matches, f)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
