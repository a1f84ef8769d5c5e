package resume

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTerminalWidth 终端渲染默认宽度
const DefaultTerminalWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("86")).Padding(0, 1)
)

// RenderTerminal 把页面渲染为终端文本
// width 为外框宽度，<= 0 时使用 DefaultTerminalWidth
func RenderTerminal(p *Page, width int) string {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	// 边框 2 列，内边距 2 列
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	wrap := lipgloss.NewStyle().Width(inner)

	var blocks []string
	if p.Title != "" {
		blocks = append(blocks, titleStyle.Render(p.Title))
	}

	for _, r := range p.Regions {
		switch r.Kind {
		case RegionHeader:
			items := make([]string, 0, len(r.Items))
			for _, item := range r.Items {
				items = append(items, headerStyle.Render(item))
			}
			blocks = append(blocks, wrap.Render(strings.Join(items, "  ")))
		case RegionBody:
			for _, s := range r.Sections {
				lines := []string{headingStyle.Render(s.Heading)}
				for _, para := range s.Paragraphs {
					lines = append(lines, wrap.Render(textStyle.Render(para)))
				}
				blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
			}
		case RegionFooter:
			lines := make([]string, 0, len(r.Lines))
			for _, l := range r.Lines {
				lines = append(lines, footerStyle.Render(l))
			}
			blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
		}
	}

	return boxStyle.Render(strings.Join(blocks, "\n\n"))
}
