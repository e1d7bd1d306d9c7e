package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create and seed the database if it does not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			if a.mgr.Exists() {
				a.log.Info().Str("path", a.cfg.DatabasePath).Msg("database already exists, nothing to do")
				return nil
			}

			path := csvPath
			if path == "" {
				path = a.cfg.CSVPath
			}
			a.log.Info().Str("path", a.cfg.DatabasePath).Msg("database not found, initializing")
			return a.mgr.Initialize(path)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV to load (env: LUDEX_CSV_PATH)")
	return cmd
}
