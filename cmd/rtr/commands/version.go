package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teunvw14/rtr/internal/version"
)

func newVersionCommand() *cobra.Command {
	var (
		showFull bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !showFull && format == string(version.FormatText) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return err
			}

			out, err := version.GetBuildInfo().Render(version.Format(format))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&showFull, "full", false,
		"show full version information")
	cmd.Flags().StringVarP(&format, "output", "o", string(version.FormatText),
		"output format of the full report: text|json|yaml")

	return cmd
}
