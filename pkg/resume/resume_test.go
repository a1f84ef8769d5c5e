package resume

import (
	"bytes"
	"strings"
	"testing"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(items ...string) *config.ResumeConfig {
	return &config.ResumeConfig{
		Title:  "Resume",
		Header: config.HeaderConfig{Items: items},
		Body: config.BodyConfig{Sections: []config.SectionConfig{
			{Heading: "Experience", Paragraphs: []string{"Built robots."}},
		}},
		Footer: config.FooterConfig{Lines: []string{"Built with Go"}},
	}
}

// assertOrdered 检查 parts 在 s 中按顺序出现
func assertOrdered(t *testing.T, s string, parts ...string) {
	t.Helper()
	pos := 0
	for _, p := range parts {
		i := strings.Index(s[pos:], p)
		require.GreaterOrEqual(t, i, 0, "%q not found after offset %d", p, pos)
		pos += i + len(p)
	}
}

func TestNewPageRegions(t *testing.T) {
	page := NewPage(testConfig("A", "B", "C"))

	require.Len(t, page.Regions, 3)
	assert.Equal(t, RegionHeader, page.Regions[0].Kind)
	assert.Equal(t, RegionBody, page.Regions[1].Kind)
	assert.Equal(t, RegionFooter, page.Regions[2].Kind)

	assert.Equal(t, []string{"A", "B", "C"}, page.Header().Items)
	assert.Equal(t, "Experience", page.Body().Sections[0].Heading)
	assert.Equal(t, []string{"Built with Go"}, page.Footer().Lines)
}

func TestNewPageHeaderItems(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{"empty", nil},
		{"single", []string{"Only"}},
		{"duplicates kept", []string{"X", "X", "Y"}},
		{"verbatim", []string{"  padded  ", "<b>raw</b>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(testConfig(tt.items...))
			assert.Len(t, page.Header().Items, len(tt.items))
			for i, item := range tt.items {
				assert.Equal(t, item, page.Header().Items[i])
			}
		})
	}
}

func TestNewPageCopiesConfig(t *testing.T) {
	cfg := testConfig("A", "B")
	page := NewPage(cfg)
	cfg.Header.Items[0] = "changed"
	assert.Equal(t, "A", page.Header().Items[0])
}

func TestNewPageNilConfig(t *testing.T) {
	page := NewPage(nil)
	require.Len(t, page.Regions, 3)
	assert.Empty(t, page.Header().Items)
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, NewPage(testConfig("A", "B", "C"))))
	out := buf.String()

	assertOrdered(t, out, "<header>", "<li>A</li>", "<li>B</li>", "<li>C</li>", "</header>",
		"<main>", "<h2>Experience</h2>", "<p>Built robots.</p>", "</main>",
		"<footer>", "<p>Built with Go</p>", "</footer>")
	assert.Equal(t, 3, strings.Count(out, "<li>"))
	assert.Contains(t, out, "<title>Resume</title>")
}

func TestRenderHTMLEscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, NewPage(testConfig("<b>raw</b>"))))
	assert.Contains(t, buf.String(), "&lt;b&gt;raw&lt;/b&gt;")
	assert.NotContains(t, buf.String(), "<b>raw</b>")
}

func TestRenderTerminal(t *testing.T) {
	out := RenderTerminal(NewPage(testConfig("Alpha", "Beta", "Gamma")), 60)

	assertOrdered(t, out, "Resume", "Alpha", "Beta", "Gamma", "Experience", "Built robots.", "Built with Go")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60, "line %q too wide", line)
	}
}

func TestLoadResumeFromData(t *testing.T) {
	cfg, err := config.LoadResumeConfig("../../data/resume.yaml")
	require.NoError(t, err)

	page := NewPage(cfg)
	assert.Equal(t, cfg.Header.Items, page.Header().Items)

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, page))
	assertOrdered(t, buf.String(), cfg.Header.Items...)
}
