package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("wordsearch version %s\n", a.build.Version)
			cmd.Printf("  Build time: %s\n", a.build.BuildTime)
			cmd.Printf("  Git commit: %s\n", a.build.GitCommit)
		},
	}
}
