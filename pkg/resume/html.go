package resume

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// RenderHTML 把页面渲染为完整的 HTML 文档
// 所有文字经过 HTML 转义
func RenderHTML(w io.Writer, p *Page) error {
	if err := pageTemplate.ExecuteTemplate(w, "page.html.tmpl", p); err != nil {
		return fmt.Errorf("failed to render resume html: %w", err)
	}
	return nil
}
