package article

import (
	"regexp"
	"slices"
	"strings"
)

// tagKeywords maps dev.to tags to words that suggest them.
var tagKeywords = map[string][]string{
	"ai":              {"ai", "artificial intelligence", "llm", "llms", "gpt", "chatgpt", "copilot"},
	"automation":      {"automation", "automate", "automated", "workflow", "workflows", "scripts"},
	"machinelearning": {"machine learning", "neural", "model training", "tensorflow", "pytorch"},
	"productivity":    {"productivity", "focus", "flow", "habits", "time management"},
	"programming":     {"code", "coding", "programming", "programmer", "developer", "developers"},
	"python":          {"python", "django", "flask", "pandas"},
	"javascript":      {"javascript", "typescript", "nodejs", "react", "vue"},
	"go":              {"golang", "goroutine", "goroutines"},
	"webdev":          {"web", "frontend", "backend", "html", "css"},
	"devops":          {"devops", "kubernetes", "docker", "terraform", "deployment"},
	"testing":         {"testing", "unit test", "unit tests", "tdd"},
	"career":          {"career", "job", "jobs", "interview", "skills"},
	"beginners":       {"beginner", "beginners", "getting started", "first step", "first steps"},
	"creativity":      {"creativity", "creative", "creator", "creators", "imagination"},
	"mentalhealth":    {"anxiety", "burnout", "stress", "wellbeing"},
}

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// SuggestTags ranks tags by how many of their keywords appear in the prose of
// body and returns at most limit of them. Code blocks are ignored.
func SuggestTags(body string, limit int) []string {
	words := wordRe.FindAllString(strings.ToLower(prose(body)), -1)
	text := " " + strings.Join(words, " ") + " "

	hits := make(map[string]int)
	for tag, keywords := range tagKeywords {
		for _, kw := range keywords {
			if strings.Contains(text, " "+kw+" ") {
				hits[tag]++
			}
		}
	}

	tags := make([]string, 0, len(hits))
	for tag := range hits {
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b string) int {
		if hits[a] != hits[b] {
			return hits[b] - hits[a]
		}
		return strings.Compare(a, b)
	})

	if limit >= 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
