package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded publish attempts",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "top", "n", 20, "Number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, closeDB, err := openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Nothing published yet. Run 'devpub publish' to get started.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-16s  %-9s  %-9s  %s", "DATE", "STATUS", "ID", "TITLE")))
	fmt.Println(strings.Repeat("─", 100))

	for _, e := range entries {
		status := okStyle.Render(fmt.Sprintf("%-9s", e.Status))
		switch e.Status {
		case history.StatusFailed:
			status = errorStyle.Render(fmt.Sprintf("%-9s", e.Status))
		case history.StatusDrafted:
			status = dateStyle.Render(fmt.Sprintf("%-9s", e.Status))
		}

		id := "-"
		if e.ArticleID != 0 {
			id = fmt.Sprint(e.ArticleID)
		}

		fmt.Printf(" %s  %s  %s  %s\n",
			dateStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			status,
			idStyle.Render(fmt.Sprintf("%-9s", id)),
			truncate(e.Title, 55),
		)
		if e.Status == history.StatusFailed {
			fmt.Printf(" %s  %s\n", strings.Repeat(" ", 16), labelStyle.Render(truncate(describeFailure(e), 80)))
		}
	}
	return nil
}

func describeFailure(e history.Entry) string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("%s %d: %s", e.ErrorKind, e.ErrorCode, e.ErrorMessage)
	}
	return fmt.Sprintf("%s: %s", e.ErrorKind, e.ErrorMessage)
}
