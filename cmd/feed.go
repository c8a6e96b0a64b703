package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed [username]",
	Short: "Show a user's public dev.to feed",
	Long:  `Read the public RSS feed of a dev.to user. Defaults to feed.username from config.yaml.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	username := cfg.Feed.Username
	if len(args) == 1 {
		username = args[0]
	}
	if username == "" {
		return fmt.Errorf("no username: pass one or set feed.username in config.yaml")
	}

	items, err := feed.NewFetcher(30*time.Second).FetchUserFeed(cmd.Context(), username)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Printf("No articles in %s's feed.\n", username)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-10s  %-25s  %s", "DATE", "TAGS", "TITLE")))
	fmt.Println(strings.Repeat("─", 100))

	for _, it := range items {
		date := "-"
		if !it.PublishedAt.IsZero() {
			date = it.PublishedAt.Format("2006-01-02")
		}
		fmt.Printf(" %s  %s  %s\n",
			dateStyle.Render(fmt.Sprintf("%-10s", date)),
			tagStyle.Render(fmt.Sprintf("%-25s", truncate(strings.Join(it.Tags, ","), 25))),
			truncate(it.Title, 60),
		)
	}
	return nil
}
