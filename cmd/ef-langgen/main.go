// Command ef-langgen regenerates internal/langmap/languages.yml from GitHub
// linguist's language list.
//
//	go run ./cmd/ef-langgen --out internal/langmap/languages.yml
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MoAI522/embed-files/internal/debug"
	"github.com/MoAI522/embed-files/internal/langgen"
)

var (
	flagSource string
	flagOut    string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "ef-langgen",
	Short: "Generate the extension-to-language table from linguist data",
	Long: `ef-langgen reads GitHub linguist's languages.yml (from a URL or a local
file), maps every file extension to a lowercase language name, applies the
built-in overrides and writes the sorted table as YAML.

Set GITHUB_TOKEN or GH_TOKEN to authenticate downloads.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(flagDebug)
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&flagSource, "source", langgen.DefaultURL, "URL or path of linguist languages.yml")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "internal/langmap/languages.yml", `Output file ("-" for stdout)`)
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	src, err := langgen.NewSource(flagSource)
	if err != nil {
		return err
	}
	if hs, ok := src.(*langgen.HTTPSource); ok {
		hs.Token = langgen.GitHubTokenFromEnv()
	}

	data, n, err := langgen.Generate(cmd.Context(), src)
	if err != nil {
		return err
	}

	if flagOut == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flagOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d extensions to %s\n", n, flagOut)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
