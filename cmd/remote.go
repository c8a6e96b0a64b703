package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/devto"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "List articles on dev.to",
	Long: `List your own articles, or the published articles of another user
with --user. Listing another user's articles needs no API key.`,
	Args: cobra.NoArgs,
	RunE: runRemote,
}

var remoteUser string

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.Flags().StringVarP(&remoteUser, "user", "u", "", "List this user's published articles")
}

func runRemote(cmd *cobra.Command, args []string) error {
	articles, err := newClient().ListArticles(cmd.Context(), remoteUser)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Println("No articles found.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-9s  %-10s  %-5s  %s", "ID", "DATE", "STATE", "TITLE")))
	fmt.Println(strings.Repeat("─", 100))

	for _, a := range articles {
		state := "draft"
		if published, _ := a["published"].(bool); published || remoteUser != "" {
			state = "live"
		}

		fmt.Printf(" %s  %s  %-5s  %s\n",
			idStyle.Render(fmt.Sprintf("%-9s", fieldString(a, "id"))),
			dateStyle.Render(fmt.Sprintf("%-10s", truncate(fieldString(a, "published_at"), 10))),
			state,
			truncate(fieldString(a, "title"), 60),
		)
		if u := fieldString(a, "url"); u != "" {
			fmt.Printf(" %s  %s\n", strings.Repeat(" ", 30), urlStyle.Render(u))
		}
	}

	fmt.Printf("\n%d articles\n", len(articles))
	return nil
}

// fieldString renders a decoded JSON field for display. Numbers decode as
// float64; IDs are printed without a fraction.
func fieldString(a devto.RawArticle, key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
