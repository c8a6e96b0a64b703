package devto

// Article is the input to Publish.
type Article struct {
	Title        string
	BodyMarkdown string
	Tags         []string
	Published    bool

	// Optional; left out of the request when empty so platform defaults apply.
	CanonicalURL string
	Description  string
}

// Result is the outcome of a single publish attempt. Exactly one of the
// success fields or Err is meaningful.
type Result struct {
	URL   string
	ID    int64
	Title string
	Err   *Error
}

// OK reports whether the article was created.
func (r Result) OK() bool {
	return r.Err == nil
}

// User is the decoded /me payload. Its shape is whatever the platform sends.
type User map[string]any

// Name returns the display name, falling back to the username.
func (u User) Name() string {
	for _, key := range []string{"name", "username"} {
		if s, ok := u[key].(string); ok && s != "" {
			return s
		}
	}
	return "User"
}

// ErrorText returns the platform's error field, if the payload carries one.
func (u User) ErrorText() string {
	if s, ok := u["error"].(string); ok {
		return s
	}
	return ""
}

// RawArticle is one entry of a listing response, undecoded beyond JSON.
type RawArticle map[string]any

type articleEnvelope struct {
	Article articleFields `json:"article"`
}

type articleFields struct {
	Title        string   `json:"title"`
	BodyMarkdown string   `json:"body_markdown"`
	Published    bool     `json:"published"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description,omitempty"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
}

type updateEnvelope struct {
	Article map[string]any `json:"article"`
}
