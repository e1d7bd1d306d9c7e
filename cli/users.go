package cli

import (
	"github.com/spf13/cobra"

	"Ludex/services/seeder"
)

func newUsersCmd() *cobra.Command {
	var (
		count   int
		minG    int
		maxG    int
		consent float64
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Generate synthetic users linked to random games",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.close()

			opts := seeder.Options{
				Count:       a.cfg.SeedUsers,
				MinGames:    a.cfg.MinGames,
				MaxGames:    a.cfg.MaxGames,
				ConsentRate: a.cfg.ConsentRate,
			}
			if cmd.Flags().Changed("count") {
				opts.Count = count
			}
			if cmd.Flags().Changed("min-games") {
				opts.MinGames = minG
			}
			if cmd.Flags().Changed("max-games") {
				opts.MaxGames = maxG
			}
			if cmd.Flags().Changed("consent") {
				opts.ConsentRate = consent
			}

			s := seeder.New(a.mgr.DB(), a.log)
			_, err = s.Generate(opts)
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Number of candidate users (env: LUDEX_SEED_USERS)")
	cmd.Flags().IntVar(&minG, "min-games", 0, "Minimum games per user (env: LUDEX_MIN_GAMES)")
	cmd.Flags().IntVar(&maxG, "max-games", 0, "Maximum games per user (env: LUDEX_MAX_GAMES)")
	cmd.Flags().Float64Var(&consent, "consent", 0, "Consent probability in [0,1] (env: LUDEX_CONSENT_RATE)")
	return cmd
}
