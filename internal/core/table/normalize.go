package table

import (
	"encoding/json"
	"strings"

	"github.com/anny12sstr/converter-analyses/internal/common"
)

// SpanPolicy isolates the table markup inside a raw completion response.
// It returns the table substring and whether one was found.
type SpanPolicy func(response string) (string, bool)

// WidestSpan takes the inclusive substring between the first "<table" and the
// last "</table>", case-insensitively. Multiple or nested candidate tables are
// coalesced into one span; the model tends to annotate a single long table
// with commentary before and after, and truncating it would be worse than
// swallowing the odd second table.
func WidestSpan(response string) (string, bool) {
	const startTag = "<table"
	const endTag = "</table>"

	lower := strings.ToLower(response)
	start := strings.Index(lower, startTag)
	end := strings.LastIndex(lower, endTag)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return response[start : end+len(endTag)], true
}

// NormalizeHTML applies the span policy to a raw response. Responses without
// table markers are an error, never an empty success.
func NormalizeHTML(response string, policy SpanPolicy) (string, error) {
	if policy == nil {
		policy = WidestSpan
	}
	markup, ok := policy(response)
	if !ok {
		return "", common.New(common.KindNoTableFound, "no table found in the model response")
	}
	return markup, nil
}

// Structured is the JSON-mode table: ordered headers and ordered rows of
// string cells.
type Structured struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NormalizeJSON strips any surrounding markdown fences, then parses the
// response as a structured table. An empty array is the model's explicit
// "no medical data located" answer and is distinct from a parse failure.
func NormalizeJSON(response string) (*Structured, error) {
	payload := StripFences(response)

	if payload == "" || payload == "[]" {
		return nil, common.New(common.KindNoDataFound, "no medical data located in the document")
	}

	var st Structured
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		return nil, common.Wrap(common.KindParseFailure, "model response is not a valid table object", err)
	}

	if len(st.Headers) == 0 && len(st.Rows) == 0 {
		return nil, common.New(common.KindNoDataFound, "no medical data located in the document")
	}
	return &st, nil
}

// StripFences removes a leading ``` or ```json fence line and a trailing ```
// fence, tolerating surrounding whitespace. Content without fences passes
// through untouched.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag on the opening fence line, if any
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
