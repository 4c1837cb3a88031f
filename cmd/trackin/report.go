package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download the gateway's inventory analysis report",
		Long: `Download the inventory analysis report the gateway renders
server-side, scoped to the active business. The filename comes from the
gateway's response when it provides one.`,
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
			reportPath, _ := cmd.Flags().GetString("path")

			filename, data, err := gw.DownloadReport(ctx, reportPath, sess.Selection())
			if err != nil {
				return fmt.Errorf("failed to download report: %w", err)
			}

			target := filepath.Join(dir, filename)
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Wrote " + target))
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "output directory")
	cmd.Flags().String("path", "/reports/inventory/", "gateway report path")
	return cmd
}
