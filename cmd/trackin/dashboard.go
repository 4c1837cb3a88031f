package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trackinhq/trackin/internal/orders"
	"github.com/trackinhq/trackin/internal/store"
	"github.com/trackinhq/trackin/internal/tui"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: calendar-scoped order and return
lists with live search, the add-order form, and the business KPI strip.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if err := requireAuth(sess); err != nil {
				return err
			}

			// A stale selection pointing at a deleted business falls back
			// to the all-business scope before anything renders.
			if businesses, listErr := gw.ListBusinesses(ctx); listErr == nil {
				if _, recErr := sess.ReconcileSelection(businesses); recErr != nil {
					return recErr
				}
			}

			st := store.New(gw, sess.Selection())
			defer st.Close()
			ctrl := orders.NewController(gw, sess, st, time.Now)

			theme := themes.GetTheme(viper.GetString("tui.theme"))

			return tui.Run(ctx,
				tui.WithGateway(gw),
				tui.WithSession(sess),
				tui.WithStore(st),
				tui.WithController(ctrl),
				tui.WithTheme(theme),
			)
		},
	}

	cmd.Flags().String("theme", "", "TUI theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}
