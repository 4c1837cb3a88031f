package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/common"
	"github.com/trackinhq/trackin/internal/export"
	"github.com/trackinhq/trackin/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports as spreadsheets",
		Long: `Export inventory reports as xlsx workbooks.

Both exports fetch products for the active business scope. The
dashboard export adds per-business order and return columns across
every business, with formula-driven totals.`,
	}

	cmd.AddCommand(exportProductsCmd())
	cmd.AddCommand(exportDashboardCmd())

	return cmd
}

func exportProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Export the product catalog",
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

			dir, _ := cmd.Flags().GetString("dir")

			engine := export.NewEngine(gw, time.Now)
			path, err := engine.ExportProducts(ctx, sess.Selection(), dir)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Wrote " + path))
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "output directory")
	return cmd
}

func exportDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Export the cross-business dashboard report",
		Long: `Export the dashboard report: products for the active business scope,
with per-business order and return quantities across every business
and computed totals.

With --sheets the same report is also mirrored into a Google
spreadsheet; see the sheets.* config keys and GOOGLE_SHEETS_*
environment variables.`,
		RunE: runExportDashboard,
	}

	cmd.Flags().String("dir", ".", "output directory")
	cmd.Flags().Bool("sheets", false, "also mirror the report to Google Sheets")
	return cmd
}

func runExportDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sess, gw, err := initServices()
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	if err := requireAuth(sess); err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")

	businesses, err := gw.ListBusinesses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list businesses: %w", err)
	}

	bar := cli.NewProgress(os.Stderr, len(businesses), "Fetching business activity...")

	engine := export.NewEngine(gw, time.Now)
	products, activities, err := engine.FetchDashboardData(ctx, sess.Selection(), businesses, func(model.Business) {
		_ = bar.Add(1)
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	_ = bar.Finish()

	sheet := export.BuildDashboardSheet(products, activities)

	path := filepath.Join(dir, export.DashboardFilename(time.Now()))
	if err := export.WriteWorkbook(path, []export.Sheet{sheet}); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	fmt.Println(cli.FormatSuccess("Wrote " + path))

	if mirror, _ := cmd.Flags().GetBool("sheets"); mirror {
		if err := mirrorToSheets(cmd, sheet); err != nil {
			return common.NewUserError("failed to mirror the report to Google Sheets", err)
		}
		fmt.Println(cli.FormatSuccess("Mirrored report to Google Sheets"))
	}
	return nil
}

// mirrorToSheets pushes the dashboard sheet into a Google spreadsheet,
// configured via sheets.* config keys with GOOGLE_SHEETS_* env overrides.
func mirrorToSheets(cmd *cobra.Command, sheet export.Sheet) error {
	ctx := cmd.Context()

	config := export.DefaultSheetsConfig()
	config.ClientID = viper.GetString("sheets.client_id")
	config.ClientSecret = viper.GetString("sheets.client_secret")
	config.RefreshToken = viper.GetString("sheets.refresh_token")
	config.ServiceAccountPath = viper.GetString("sheets.service_account_path")
	if id := viper.GetString("sheets.spreadsheet_id"); id != "" {
		config.SpreadsheetID = id
	}
	if name := viper.GetString("sheets.spreadsheet_name"); name != "" {
		config.SpreadsheetName = name
	}
	config.LoadFromEnv()

	writer, err := export.NewSheetsWriter(ctx, config, slog.Default())
	if err != nil {
		return err
	}
	return writer.Write(ctx, sheet)
}
