package cmd

import (
	"os"

	"github.com/dropsite-io/dropsite-cli/internal/cli"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	factory := cli.NewSessionFactory()

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "Interactive CLI for dropsite, the password-protected file sharing service",
		Long:          "Starts an interactive session for creating and accessing dropsite sites,\nand uploading and downloading their files",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, a []string) error {
			return factory.RunSession()
		},
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	os.Exit(factory.Run(cmd))
}
