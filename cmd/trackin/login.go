package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/trackinhq/trackin/internal/cli"
	"github.com/trackinhq/trackin/internal/gateway"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Authenticate with the gateway",
		Long: `Authenticate with the Track In gateway and store the session locally.

The username can be passed as an argument; both username and password are
prompted for when missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogin,
	}

	cmd.Flags().String("password", "", "password (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sess, gw, err := initServices()
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	reader := cli.NewLineReader(os.Stdin)

	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		fmt.Print(cli.FormatPrompt("Username"))
		username, err = reader.ReadLine(ctx)
		if err != nil {
			return err
		}
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		fmt.Print(cli.FormatPrompt("Password"))
		password, err = reader.ReadLine(ctx)
		if err != nil {
			return err
		}
	}

	creds, err := gw.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if creds.Username == "" {
		creds.Username = username
	}
	if err := sess.SetCredentials(creds.AccessToken, creds.RefreshToken, creds.Username); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", creds.Username)))
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if sess.AccessToken() == "" {
				fmt.Println(cli.FormatInfo("Not logged in"))
				return nil
			}

			// Best effort: local credentials are cleared even when the
			// gateway can't be reached.
			if refresh := sess.RefreshToken(); refresh != "" {
				if err := gw.Logout(ctx, refresh); err != nil {
					slog.Warn("gateway logout failed", "error", err)
				}
			}

			if err := sess.ClearCredentials(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, gw, err := initServices()
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if sess.AccessToken() == "" {
				fmt.Println(cli.FormatInfo("Not logged in"))
				return nil
			}

			fmt.Printf("Logged in as %s\n", cli.BoldStyle.Render(sess.Username()))

			selection := sess.Selection()
			label := "All Businesses"
			if businesses, listErr := gw.ListBusinesses(ctx); listErr == nil {
				selection, _ = sess.ReconcileSelection(businesses)
				for _, b := range businesses {
					if b.Selection() == selection {
						label = b.DisplayName()
					}
				}
			} else if errors.Is(listErr, gateway.ErrUnauthorized) {
				fmt.Println(cli.FormatWarning("Session expired, run 'trackin login' again"))
				return nil
			}
			fmt.Printf("Business scope: %s\n", label)
			return nil
		},
	}
}
