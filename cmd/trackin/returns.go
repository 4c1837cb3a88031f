package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
)

func returnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Manage returned orders",
		Long:  `List return records and remove ones recorded by mistake.`,
	}

	cmd.AddCommand(listReturnsCmd())
	cmd.AddCommand(removeReturnCmd())

	return cmd
}

func listReturnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List returns",
		Long: `List returns for the scope date (default today).

With --search the date filter is dropped and all returns matching the
term are shown instead.`,
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

			date, _ := cmd.Flags().GetString("date")
			search, _ := cmd.Flags().GetString("search")
			if date == "" {
				date = time.Now().Format(model.DateFormat)
			}
			scope := gateway.ListScope{Business: sess.Selection(), Date: date}
			if search != "" {
				scope.Date = ""
			}

			records, err := gw.ListReturns(ctx, scope)
			if err != nil {
				return fmt.Errorf("failed to list returns: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			shown := 0
			fmt.Fprintln(w, "ID\tORDER ID\tTRACKING\tPRODUCT\tQTY\tCUSTOMER\tDATE")
			for _, r := range records {
				if !r.MatchesSearch(search) {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
					r.ID, r.OrderID, r.TrackingID, r.ProductName, r.Quantity, r.CustomerName, r.Date)
				shown++
			}
			if shown == 0 {
				_ = w.Flush()
				fmt.Println(cli.InfoStyle.Render("No returns for this scope."))
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "scope date (YYYY-MM-DD, default today)")
	cmd.Flags().String("search", "", "free-text search (overrides the date)")
	return cmd
}

func removeReturnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a return record",
		Long:  `Remove a return record by its id (shown in 'trackin returns list').`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			var returnID int64
			if _, scanErr := fmt.Sscanf(args[0], "%d", &returnID); scanErr != nil {
				return fmt.Errorf("invalid return id %q", args[0])
			}

			st, ctrl := initController(sess, gw)
			date, _ := cmd.Flags().GetString("date")
			st.SetDate(ctx, date)

			_ = ctrl.RemoveReturn(ctx, returnID)
			return printBanner(st)
		},
	}

	cmd.Flags().String("date", "", "scope date the return was listed under")
	return cmd
}
