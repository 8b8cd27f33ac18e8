package main

import (
	"os"

	"github.com/spf13/cobra"
)

func (a *app) newCheckCmd() *cobra.Command {
	var instance, certificate string
	cmd := &cobra.Command{
		Use:       "check <problem>",
		Short:     "Check a certificate against its instance",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: problemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := lookupProblem(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(certificate)
			if err != nil {
				return err
			}
			return pr.check(instance, data, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&instance, "instance", "i", "", "Instance JSON file (required)")
	cmd.Flags().StringVarP(&certificate, "certificate", "c", "", "Certificate JSON file (required)")
	_ = cmd.MarkFlagRequired("instance")
	_ = cmd.MarkFlagRequired("certificate")
	return cmd
}
