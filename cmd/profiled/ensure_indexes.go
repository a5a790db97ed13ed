package main

import (
	"github.com/spf13/cobra"
)

var ensureIndexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the indexes the profile queries rely on",
	RunE: runWithApp(func(cmd *cobra.Command, a *app) error {
		if err := a.profiles.EnsureIndexes(cmd.Context()); err != nil {
			return err
		}
		a.log.Info().Msg("indexes ensured")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(ensureIndexesCmd)
}
