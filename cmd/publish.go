package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/article"
	"github.com/julienpequegnot/devpub/internal/devto"
	"github.com/julienpequegnot/devpub/internal/history"
)

var publishCmd = &cobra.Command{
	Use:   "publish [n]",
	Short: "Publish articles to dev.to",
	Long: `Publish the article numbered n (see 'devpub articles').

Without n or a selector flag, devpub checks the connection, lists the
collection and asks which article to publish. An empty or unknown answer
picks one at random.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

var (
	publishAll       bool
	publishRandom    bool
	publishDraft     bool
	publishForce     bool
	publishDescribe  bool
	publishSuggest   bool
	publishCanonical string
)

// descriptionLimit bounds descriptions derived from the opening paragraph.
const descriptionLimit = 150

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "Publish every article in order")
	publishCmd.Flags().BoolVar(&publishRandom, "random", false, "Publish one article chosen at random")
	publishCmd.Flags().BoolVar(&publishDraft, "draft", false, "Create unpublished drafts")
	publishCmd.Flags().BoolVar(&publishForce, "force", false, "Publish even if already recorded as published")
	publishCmd.Flags().BoolVar(&publishDescribe, "describe", false, "Use the first paragraph as description when none is set")
	publishCmd.Flags().BoolVar(&publishSuggest, "suggest-tags", false, "Replace default tags with tags suggested from the body")
	publishCmd.Flags().StringVar(&publishCanonical, "canonical-url", "", "Canonical URL for a single article")
	publishCmd.MarkFlagsMutuallyExclusive("all", "random")
}

func runPublish(cmd *cobra.Command, args []string) error {
	if (publishAll || publishRandom) && len(args) > 0 {
		return fmt.Errorf("an article number can't be combined with --all or --random")
	}
	if publishAll && publishCanonical != "" {
		return fmt.Errorf("--canonical-url applies to a single article")
	}

	out := cmd.OutOrStdout()
	client := newClient()
	if !client.HasAPIKey() {
		reportConfigError(out, devto.MissingKeyError())
		return nil
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var records []article.Record
	switch {
	case publishAll:
		records = store.All()
	case publishRandom:
		records = []article.Record{store.Random()}
	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid article number: %s", args[0])
		}
		r, err := store.Get(n - 1)
		if err != nil {
			return err
		}
		records = []article.Record{r}
	default:
		r, ok, err := promptArticle(ctx, cmd.InOrStdin(), out, client, store)
		if err != nil {
			if reportConfigError(out, err) {
				return nil
			}
			return err
		}
		if !ok {
			return nil
		}
		records = []article.Record{r}
	}

	repo, closeDB, err := openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	records, err = skipPublished(out, repo, records)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	articles := make([]devto.Article, len(records))
	for i, r := range records {
		articles[i] = toArticle(r)
		fmt.Fprintf(out, "→ Publishing: %s...\n", r.Title)
	}

	results := client.PublishAll(ctx, articles)

	published := 0
	for i, res := range results {
		if _, err := repo.Record(history.FromResult(records[i].Title, res, articles[i].Published)); err != nil {
			log.Warnw("failed to record publication", "title", records[i].Title, "error", err)
		}

		switch {
		case !res.OK():
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("✗ Failed:"), records[i].Title, res.Err)
		case articles[i].Published:
			published++
			fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓ Published:"), res.Title)
			fmt.Fprintf(out, "  %s\n", urlStyle.Render(res.URL))
		default:
			published++
			fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓ Drafted:"), res.Title)
			fmt.Fprintf(out, "  %s\n", urlStyle.Render(res.URL))
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\n%d/%d published\n", published, len(results))
	}
	return nil
}

// promptArticle greets the key owner, lists the collection and reads a
// choice from in. ok is false when the platform rejected the credential.
func promptArticle(ctx context.Context, in io.Reader, out io.Writer, client *devto.Client, store *article.Store) (article.Record, bool, error) {
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return article.Record{}, false, err
	}
	if msg := user.ErrorText(); msg != "" {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render("✗ API error:"), msg)
		return article.Record{}, false, nil
	}

	fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓ Connected:"), user.Name())
	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("Available articles:"))
	for i, title := range store.Titles() {
		fmt.Fprintf(out, "  %s %s\n", idStyle.Render(fmt.Sprintf("%d.", i+1)), title)
	}

	fmt.Fprint(out, "\nChoose an article (Enter for random): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return article.Record{}, false, err
	}
	fmt.Fprintln(out)

	return chooseArticle(store, line), true, nil
}

// chooseArticle maps a 1-based answer to a record. Anything that isn't a
// valid number picks one at random.
func chooseArticle(store *article.Store, answer string) article.Record {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return store.Random()
	}
	r, err := store.Get(n - 1)
	if err != nil {
		return store.Random()
	}
	return r
}

// skipPublished drops records already live on the platform unless --force is set.
func skipPublished(out io.Writer, repo *history.Repository, records []article.Record) ([]article.Record, error) {
	if publishForce {
		return records, nil
	}

	kept := records[:0:0]
	for _, r := range records {
		prev, err := repo.FindPublished(r.Title)
		if err != nil {
			return nil, err
		}
		if prev != nil {
			fmt.Fprintf(out, "%s %s (%s, %s); use --force to publish again\n",
				labelStyle.Render("Skipping:"), r.Title,
				prev.CreatedAt.Local().Format("2006-01-02"), prev.URL)
			continue
		}
		kept = append(kept, r)
	}
	return kept, nil
}

func toArticle(r article.Record) devto.Article {
	a := devto.Article{
		Title:        r.Title,
		BodyMarkdown: r.Body,
		Tags:         r.Tags,
		Published:    r.Published && cfg.Publish.Published && !publishDraft,
		CanonicalURL: r.CanonicalURL,
		Description:  r.Description,
	}
	if publishCanonical != "" {
		a.CanonicalURL = publishCanonical
	}
	if publishSuggest && slices.Equal(r.Tags, article.DefaultTags) {
		if suggested := article.SuggestTags(r.Body, devto.MaxTags); len(suggested) > 0 {
			a.Tags = suggested
		}
	}
	if a.Description == "" && (publishDescribe || cfg.Publish.Describe) {
		a.Description = truncate(article.Summary(r.Body), descriptionLimit)
	}
	return a
}
