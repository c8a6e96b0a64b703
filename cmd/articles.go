package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/article"
	"github.com/julienpequegnot/devpub/internal/devto"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List the article collection",
	Long:  `List the stored articles with their 1-based numbers, tags and word counts.`,
	Args:  cobra.NoArgs,
	RunE:  runArticles,
}

var articlesShowCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Show one article",
	Long:  `Display an article's metadata, outline and opening paragraph.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runArticlesShow,
}

func init() {
	rootCmd.AddCommand(articlesCmd)
	articlesCmd.AddCommand(articlesShowCmd)
}

func runArticles(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-3s  %-5s  %-30s  %s", "#", "WORDS", "TAGS", "TITLE")))
	fmt.Println(strings.Repeat("─", 100))

	for i, r := range store.All() {
		fmt.Printf(" %s  %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-3d", i+1)),
			valueStyle.Render(fmt.Sprintf("%-5d", article.WordCount(r.Body))),
			tagStyle.Render(fmt.Sprintf("%-30s", truncate(strings.Join(r.Tags, ","), 30))),
			truncate(r.Title, 55),
		)
	}

	fmt.Printf("\n%d articles\n", store.Len())
	return nil
}

func runArticlesShow(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid article number: %s", args[0])
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	r, err := store.Get(n - 1)
	if err != nil {
		return err
	}

	divider := labelStyle.Render(strings.Repeat("━", 70))

	fmt.Println(divider)
	fmt.Println(titleStyle.Render(r.Title))
	fmt.Println(divider)

	fmt.Printf("%s %s\n", labelStyle.Render("Tags:"), tagStyle.Render(strings.Join(r.Tags, ", ")))
	if len(r.Tags) > devto.MaxTags {
		fmt.Printf("%s %s\n", labelStyle.Render("Sent:"), tagStyle.Render(strings.Join(devto.TruncateTags(r.Tags), ", ")))
	}
	if suggested := article.SuggestTags(r.Body, devto.MaxTags); len(suggested) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Suggested:"), tagStyle.Render(strings.Join(suggested, ", ")))
	}
	fmt.Printf("%s %t\n", labelStyle.Render("Published:"), r.Published)
	fmt.Printf("%s %d\n", labelStyle.Render("Words:"), article.WordCount(r.Body))
	if r.CanonicalURL != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Canonical:"), urlStyle.Render(r.CanonicalURL))
	}

	if headings := article.Outline(r.Body); len(headings) > 0 {
		fmt.Printf("\n%s\n", labelStyle.Render("OUTLINE:"))
		for _, h := range headings {
			fmt.Printf("  %s• %s\n", strings.Repeat("  ", h.Level-1), h.Text)
		}
	}

	if summary := article.Summary(r.Body); summary != "" {
		fmt.Printf("\n%s\n", labelStyle.Render("PREVIEW:"))
		fmt.Println(valueStyle.Render(summary))
	}

	return nil
}
