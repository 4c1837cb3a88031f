package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/common"
	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/orders"
	"github.com/trackinhq/trackin/internal/session"
	"github.com/trackinhq/trackin/internal/store"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
		Long:  `List, add, return and delete orders in the active business scope.`,
	}

	cmd.AddCommand(listOrdersCmd())
	cmd.AddCommand(addOrderCmd())
	cmd.AddCommand(returnOrderCmd())
	cmd.AddCommand(deleteOrderCmd())

	return cmd
}

// initController wires a record store and order controller over the session.
func initController(sess *session.Session, gw gateway.Service) (*store.Store, *orders.Controller) {
	st := store.New(gw, sess.Selection())
	ctrl := orders.NewController(gw, sess, st, time.Now)
	return st, ctrl
}

// printBanner prints the outcome banner a mutation left in the store.
func printBanner(st *store.Store) error {
	kind, message := st.Message()
	switch kind {
	case store.MessageSuccess:
		fmt.Println(cli.FormatSuccess(message))
		return nil
	case store.MessageError:
		return fmt.Errorf("%s", message)
	default:
		return nil
	}
}

// orderScope builds the list scope from the command's flags. A non-empty
// search drops the date filter and filters client-side instead.
func orderScope(cmd *cobra.Command, business string) (gateway.ListScope, string) {
	date, _ := cmd.Flags().GetString("date")
	search, _ := cmd.Flags().GetString("search")
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}

	scope := gateway.ListScope{Business: business, Date: date}
	if search != "" {
		scope.Date = ""
	}
	return scope, search
}

func listOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long: `List active orders for the scope date (default today).

With --search the date filter is dropped and all orders matching the
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

			scope, search := orderScope(cmd, sess.Selection())
			records, err := gw.ListOrders(ctx, scope)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			shown := 0
			fmt.Fprintln(w, "ORDER ID\tTRACKING\tPRODUCT\tQTY\tCUSTOMER\tDATE")
			for _, o := range records {
				if o.IsReturned || !o.MatchesSearch(search) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					o.OrderID, o.TrackingID, o.ProductName, o.Quantity, o.CustomerName, o.Date)
				shown++
			}
			if shown == 0 {
				_ = w.Flush()
				fmt.Println(cli.InfoStyle.Render("No orders for this scope."))
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "scope date (YYYY-MM-DD, default today)")
	cmd.Flags().String("search", "", "free-text search (overrides the date)")
	return cmd
}

func addOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			st, ctrl := initController(sess, gw)

			draft := model.OrderDraft{}
			draft.OrderID, _ = cmd.Flags().GetString("order-id")
			draft.TrackingID, _ = cmd.Flags().GetString("tracking")
			draft.ProductName, _ = cmd.Flags().GetString("product")
			draft.Quantity, _ = cmd.Flags().GetInt("qty")
			draft.CustomerName, _ = cmd.Flags().GetString("customer")
			draft.Date, _ = cmd.Flags().GetString("date")

			_ = ctrl.CreateOrder(ctx, draft)
			return printBanner(st)
		},
	}

	cmd.Flags().String("order-id", "", "order reference")
	cmd.Flags().String("tracking", "", "tracking reference")
	cmd.Flags().String("product", "", "product name")
	cmd.Flags().Int("qty", 1, "quantity")
	cmd.Flags().String("customer", "", "customer name")
	cmd.Flags().String("date", "", "order date (YYYY-MM-DD, default today)")
	return cmd
}

// findOrder resolves a user-facing order reference among the store's
// scoped orders.
func findOrder(records []model.Order, reference string) (model.Order, error) {
	for _, o := range records {
		if o.OrderID == reference {
			return o, nil
		}
	}
	return model.Order{}, fmt.Errorf("%w: no active order %s on the scope date (try --date)", common.ErrNotFound, reference)
}

func returnOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return <order-id>",
		Short: "Record a full return for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			st, ctrl := initController(sess, gw)
			date, _ := cmd.Flags().GetString("date")
			st.SetDate(ctx, date)

			order, err := findOrder(st.Orders(), args[0])
			if err != nil {
				return err
			}

			_ = ctrl.ReturnOrder(ctx, order)
			return printBanner(st)
		},
	}

	cmd.Flags().String("date", "", "scope date the order was listed under")
	return cmd
}

func deleteOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete an order and restore its stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			st, ctrl := initController(sess, gw)
			date, _ := cmd.Flags().GetString("date")
			st.SetDate(ctx, date)

			order, err := findOrder(st.Orders(), args[0])
			if err != nil {
				return err
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Print(cli.FormatPrompt(fmt.Sprintf("Delete order %s? [y/N]", order.OrderID)))
				reader := cli.NewLineReader(os.Stdin)
				answer, readErr := reader.ReadLine(ctx)
				if readErr != nil {
					return readErr
				}
				if answer != "y" && answer != "Y" {
					fmt.Println(cli.FormatInfo("Cancelled"))
					return nil
				}
			}

			if err := ctrl.RequestDelete(order.ID); err != nil {
				return err
			}
			_ = ctrl.ConfirmDelete(ctx)
			return printBanner(st)
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("date", "", "scope date the order was listed under")
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}
