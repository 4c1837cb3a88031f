package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/common"
	"github.com/trackinhq/trackin/internal/model"
)

func businessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Manage businesses",
		Long:  `List businesses, add new ones, and pick the active business scope.`,
	}

	cmd.AddCommand(listBusinessesCmd())
	cmd.AddCommand(addBusinessCmd())
	cmd.AddCommand(selectBusinessCmd())

	return cmd
}

func listBusinessesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all businesses",
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

			businesses, err := gw.ListBusinesses(ctx)
			if err != nil {
				return fmt.Errorf("failed to list businesses: %w", err)
			}

			selection, err := sess.ReconcileSelection(businesses)
			if err != nil {
				return err
			}

			if len(businesses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No businesses yet. Use 'trackin business add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "\tID\tNAME\tTYPE\tBRANCH\tCONTACT")
			marker := " "
			if selection == model.SelectionAll {
				marker = cli.SuccessIcon
			}
			fmt.Fprintf(w, "%s\t-\tAll Businesses\t\t\t\n", marker)
			for _, b := range businesses {
				marker = " "
				if b.Selection() == selection {
					marker = cli.SuccessIcon
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
					marker, b.ID, b.DisplayName(), b.BusinessType, b.DepartmentBranch, b.ContactNumber)
			}
			return nil
		},
	}
}

func addBusinessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a business",
		Long: `Create a business on the gateway.

With --copy-from, the new business starts with a copy of another
business's product catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if err := requireAuth(sess); err != nil {
				return err
			}

			nb := model.NewBusiness{BusinessName: args[0]}
			nb.BusinessType, _ = cmd.Flags().GetString("type")
			nb.ContactNumber, _ = cmd.Flags().GetString("contact")
			nb.GSTTaxID, _ = cmd.Flags().GetString("tax-id")
			nb.BusinessAddress, _ = cmd.Flags().GetString("address")
			nb.DepartmentBranch, _ = cmd.Flags().GetString("branch")
			nb.CopyFromBusiness, _ = cmd.Flags().GetString("copy-from")

			created, err := gw.CreateBusiness(ctx, nb)
			if err != nil {
				return fmt.Errorf("failed to create business: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created business %s (id %d)", created.DisplayName(), created.ID)))
			return nil
		},
	}

	cmd.Flags().String("type", "", "business type")
	cmd.Flags().String("contact", "", "contact number")
	cmd.Flags().String("tax-id", "", "GST / tax id")
	cmd.Flags().String("address", "", "business address")
	cmd.Flags().String("branch", "", "department or branch")
	cmd.Flags().String("copy-from", "", "business id whose product catalog to copy")

	return cmd
}

func selectBusinessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id|all>",
		Short: "Set the active business scope",
		Long: `Set the business scope used by every other command.

Pass a business id, or "all" to work across all businesses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if err := requireAuth(sess); err != nil {
				return err
			}

			selection := args[0]
			label := "All Businesses"
			if selection != model.SelectionAll {
				businesses, listErr := gw.ListBusinesses(ctx)
				if listErr != nil {
					return fmt.Errorf("failed to list businesses: %w", listErr)
				}
				found := false
				for _, b := range businesses {
					if b.Selection() == selection {
						label = b.DisplayName()
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("%w: no business with id %s", common.ErrNoSuchSelection, selection)
				}
			}

			if err := sess.SetSelection(selection); err != nil {
				return fmt.Errorf("failed to save selection: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Now scoped to " + label))
			return nil
		},
	}
}
