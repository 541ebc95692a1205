package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "check <steam-id>",
		Short: "Run a qualification check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/checks/" + args[0]
			if refresh {
				path += "?refresh=1"
			}

			var result CheckResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cached result")

	return cmd
}
