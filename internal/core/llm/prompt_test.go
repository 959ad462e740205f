package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anny12sstr/converter-analyses/internal/config"
	"github.com/anny12sstr/converter-analyses/internal/core"
)

func TestPromptForIsDeterministicPerCategory(t *testing.T) {
	req := require.New(t)

	categories := []core.MediaCategory{core.CategoryWord, core.CategoryPDF, core.CategoryImage}

	seen := map[string]bool{}
	for _, cat := range categories {
		p := PromptFor(cat, config.TableModeHTML)
		req.NotEmpty(p)
		req.False(seen[p], "category %s shares a prompt", cat)
		seen[p] = true

		// selection is stable
		req.Equal(p, PromptFor(cat, config.TableModeHTML))
	}
}

func TestPromptForHTMLModeAsksForTableMarkup(t *testing.T) {
	req := require.New(t)

	for _, cat := range []core.MediaCategory{core.CategoryWord, core.CategoryPDF, core.CategoryImage} {
		p := PromptFor(cat, config.TableModeHTML)
		req.Contains(p, "HTML table")
		req.NotContains(p, "JSON")
	}
}

func TestPromptForJSONModeAsksForStructuredShape(t *testing.T) {
	req := require.New(t)

	for _, cat := range []core.MediaCategory{core.CategoryWord, core.CategoryPDF, core.CategoryImage} {
		p := PromptFor(cat, config.TableModeJSON)
		req.Contains(p, `"headers"`)
		req.Contains(p, `"rows"`)
		req.NotContains(p, "HTML table")
	}
}
