package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the API key",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, err := newClient().CurrentUser(cmd.Context())
	if err != nil {
		if reportConfigError(cmd.OutOrStdout(), err) {
			return nil
		}
		return err
	}

	if msg := user.ErrorText(); msg != "" {
		fmt.Printf("%s %s\n", errorStyle.Render("✗ API error:"), msg)
		return nil
	}

	fmt.Printf("%s %s\n", okStyle.Render("✓ Connected:"), titleStyle.Render(user.Name()))
	for _, key := range []string{"username", "joined_at", "location", "website_url"} {
		if v, ok := user[key].(string); ok && v != "" {
			fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", key+":")), valueStyle.Render(v))
		}
	}
	return nil
}
