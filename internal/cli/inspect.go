package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rpm-solv/internal/app"
)

type inspectOptions struct {
	XMLPath  string
	BaseURL  string
	RepoFile string
	RepoName string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a repository: package count and capabilities with no provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.XMLPath, "xml", "", "Path to a local primary.xml file")
	cmd.Flags().StringVar(&opts.BaseURL, "baseurl", "", "Repository base URL (repodata/repomd.xml is resolved beneath it)")
	cmd.Flags().StringVar(&opts.RepoFile, "repo-file", "", ".repo INI file to read a baseurl from")
	cmd.Flags().StringVar(&opts.RepoName, "repo-name", "", "Section name within --repo-file to use (default: first)")

	_ = viper.BindPFlag("xml", cmd.Flags().Lookup("xml"))
	_ = viper.BindPFlag("baseurl", cmd.Flags().Lookup("baseurl"))
	_ = viper.BindPFlag("repo_file", cmd.Flags().Lookup("repo-file"))
	_ = viper.BindPFlag("repo_name", cmd.Flags().Lookup("repo-name"))

	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := app.NewService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		XMLPath:  resolveString(cmd, opts.XMLPath, "xml", "xml"),
		BaseURL:  resolveString(cmd, opts.BaseURL, "baseurl", "baseurl"),
		RepoFile: resolveString(cmd, opts.RepoFile, "repo_file", "repo-file"),
		RepoName: resolveString(cmd, opts.RepoName, "repo_name", "repo-name"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("packages: %d\n", result.PackageCount)
	if len(result.UnprovidedCapabilities) == 0 {
		fmt.Println("unprovided capabilities: none")
		return nil
	}
	fmt.Println("unprovided capabilities:")
	for _, name := range result.UnprovidedCapabilities {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
