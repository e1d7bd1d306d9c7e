package cli

import (
	"github.com/spf13/cobra"

	"Ludex/services/catalog"
)

func newLoadCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a catalog CSV into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			path := csvPath
			if path == "" {
				path = a.cfg.CSVPath
			}

			records, err := catalog.ReadCSV(path)
			if err != nil {
				return err
			}

			// Loading into a fresh file is allowed; make sure the schema and
			// the sentinel rows are there.
			if err := a.mgr.EnsureSchema(); err != nil {
				return err
			}

			loader := catalog.NewLoader(a.mgr.DB(), a.log)
			_, err = loader.Load(records)
			return err
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV to load (env: LUDEX_CSV_PATH)")
	return cmd
}
