package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rpm-solv/internal/app"
)

type checkOptions struct {
	XMLPath  string
	BaseURL  string
	RepoFile string
	RepoName string
	Trace    bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <package-name>",
		Short: "Check whether a package can be installed without violating any dependency constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.XMLPath, "xml", "", "Path to a local primary.xml file")
	cmd.Flags().StringVar(&opts.BaseURL, "baseurl", "", "Repository base URL (repodata/repomd.xml is resolved beneath it)")
	cmd.Flags().StringVar(&opts.RepoFile, "repo-file", "", ".repo INI file to read a baseurl from")
	cmd.Flags().StringVar(&opts.RepoName, "repo-name", "", "Section name within --repo-file to use (default: first)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Print the resolved root package name")

	_ = viper.BindPFlag("xml", cmd.Flags().Lookup("xml"))
	_ = viper.BindPFlag("baseurl", cmd.Flags().Lookup("baseurl"))
	_ = viper.BindPFlag("repo_file", cmd.Flags().Lookup("repo-file"))
	_ = viper.BindPFlag("repo_name", cmd.Flags().Lookup("repo-name"))

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, packageName string, opts checkOptions) error {
	service := app.NewService()
	result, err := service.Check(ctx, app.CheckRequest{
		PackageName: packageName,
		XMLPath:     resolveString(cmd, opts.XMLPath, "xml", "xml"),
		BaseURL:     resolveString(cmd, opts.BaseURL, "baseurl", "baseurl"),
		RepoFile:    resolveString(cmd, opts.RepoFile, "repo_file", "repo-file"),
		RepoName:    resolveString(cmd, opts.RepoName, "repo_name", "repo-name"),
		Trace:       opts.Trace,
	})
	if err != nil {
		return err
	}

	if result.Satisfiable {
		fmt.Printf("%s: satisfiable\n", result.PackageName)
	} else {
		fmt.Printf("%s: unsatisfiable\n", result.PackageName)
	}
	if opts.Trace && result.TracedPackage != "" {
		fmt.Printf("root package: %s\n", result.TracedPackage)
	}
	if !result.Satisfiable {
		os.Exit(1)
	}
	return nil
}
