package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <article-id>",
	Short: "Update a published article",
	Long: `Send a partial update for an existing dev.to article.

Only the fields given on the command line are sent. --set key=value adds
any other article field; values that parse as JSON are sent as such.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateTitle     string
	updateBodyFile  string
	updateTags      []string
	updatePublished bool
	updateSet       []string
)

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateBodyFile, "body-file", "", "Read the new markdown body from a file")
	updateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "New tags, comma separated")
	updateCmd.Flags().BoolVar(&updatePublished, "published", false, "Set the published flag")
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "Extra field as key=value (repeatable)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid article ID: %s", args[0])
	}

	fields, err := updateFields(cmd)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to update: pass --title, --body-file, --tags, --published or --set")
	}

	resp, err := newClient().Update(cmd.Context(), id, fields)
	if err != nil {
		if reportConfigError(cmd.OutOrStdout(), err) {
			return nil
		}
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func updateFields(cmd *cobra.Command) (map[string]any, error) {
	fields := map[string]any{}

	for _, kv := range updateSet {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		fields[strings.TrimSpace(key)] = parseFieldValue(value)
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		fields["title"] = updateTitle
	}
	if flags.Changed("body-file") {
		body, err := os.ReadFile(updateBodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}
		fields["body_markdown"] = string(body)
	}
	if flags.Changed("tags") {
		fields["tags"] = updateTags
	}
	if flags.Changed("published") {
		fields["published"] = updatePublished
	}

	return fields, nil
}

func parseFieldValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}
