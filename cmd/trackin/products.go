package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/common"
	"github.com/trackinhq/trackin/internal/model"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
		Long:  `List, add, update and delete products in the active business scope.`,
	}

	cmd.AddCommand(listProductsCmd())
	cmd.AddCommand(addProductCmd())
	cmd.AddCommand(updateProductCmd())
	cmd.AddCommand(deleteProductCmd())

	return cmd
}

func listProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products in the active scope",
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

			products, err := gw.ListProducts(ctx, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if len(products) == 0 {
				fmt.Println(cli.InfoStyle.Render("No products in this scope."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tSTOCK\tMIN\tMAX\tPRICE\tSELLING\tSUPPLIER")
			for _, p := range products {
				stock := fmt.Sprintf("%d", p.CurrentStock)
				if p.CurrentStock <= p.MinStock {
					stock = cli.WarningStyle.Render(stock + " !")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\t%.2f\t%s\n",
					p.SKU, p.ProductName, p.Category, stock,
					p.MinStock, p.MaxStock, p.Price, p.SellingPrice, p.Supplier)
			}
			return nil
		},
	}
}

func productFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "product name")
	cmd.Flags().String("category", "", "product category")
	cmd.Flags().Int("stock", 0, "current stock")
	cmd.Flags().Int("min-stock", 0, "minimum stock level")
	cmd.Flags().Int("max-stock", 0, "maximum stock level")
	cmd.Flags().Float64("price", 0, "purchase price")
	cmd.Flags().Float64("selling-price", 0, "selling price")
	cmd.Flags().String("supplier", "", "supplier name")
}

func applyProductFlags(cmd *cobra.Command, p *model.Product) {
	if cmd.Flags().Changed("name") {
		p.ProductName, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("category") {
		p.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("stock") {
		p.CurrentStock, _ = cmd.Flags().GetInt("stock")
	}
	if cmd.Flags().Changed("min-stock") {
		p.MinStock, _ = cmd.Flags().GetInt("min-stock")
	}
	if cmd.Flags().Changed("max-stock") {
		p.MaxStock, _ = cmd.Flags().GetInt("max-stock")
	}
	if cmd.Flags().Changed("price") {
		p.Price, _ = cmd.Flags().GetFloat64("price")
	}
	if cmd.Flags().Changed("selling-price") {
		p.SellingPrice, _ = cmd.Flags().GetFloat64("selling-price")
	}
	if cmd.Flags().Changed("supplier") {
		p.Supplier, _ = cmd.Flags().GetString("supplier")
	}
}

// renderFieldErrors prints validation failures the way the gateway phrases
// them, one "field: message" line each.
func renderFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("%s: %s", field, errs[field]))
	}
	return strings.Join(lines, "\n")
}

func addProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <sku>",
		Short: "Add a product",
		Args:  cobra.ExactArgs(1),
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

			p := model.Product{SKU: args[0]}
			applyProductFlags(cmd, &p)

			existing, err := gw.ListProducts(ctx, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}
			if errs := model.ValidateProduct(p, existing); len(errs) > 0 {
				return fmt.Errorf("invalid product:\n%s", renderFieldErrors(errs))
			}

			saved, err := gw.SaveProduct(ctx, p, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added product %s (%s)", saved.ProductName, saved.SKU)))
			return nil
		},
	}

	productFlags(cmd)
	return cmd
}

func updateProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <sku>",
		Short: "Update a product",
		Long:  `Update a product. Only the flags you pass are changed.`,
		Args:  cobra.ExactArgs(1),
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

			existing, err := gw.ListProducts(ctx, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			var target *model.Product
			for i := range existing {
				if existing[i].SKU == args[0] {
					target = &existing[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("%w: no product with SKU %s", common.ErrNotFound, args[0])
			}

			p := *target
			applyProductFlags(cmd, &p)

			if errs := model.ValidateProduct(p, existing); len(errs) > 0 {
				return fmt.Errorf("invalid product:\n%s", renderFieldErrors(errs))
			}

			saved, err := gw.SaveProduct(ctx, p, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated product %s (%s)", saved.ProductName, saved.SKU)))
			return nil
		},
	}

	productFlags(cmd)
	return cmd
}

func deleteProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sku>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
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

			if err := gw.DeleteProduct(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete product: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Deleted product " + args[0]))
			return nil
		},
	}
}
