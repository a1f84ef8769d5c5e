// Package resume 生成静态简历页
//
// 页面固定由页眉、正文、页脚三个区域按顺序组成，
// 可以渲染为 HTML（RenderHTML）或终端文本（RenderTerminal）。
package resume

import (
	"slices"

	"github.com/athakkar/portfolio/pkg/config"
)

// RegionKind 页面区域类型
type RegionKind string

const (
	RegionHeader RegionKind = "header"
	RegionBody   RegionKind = "body"
	RegionFooter RegionKind = "footer"
)

// Section 正文小节
type Section struct {
	Heading    string
	Paragraphs []string
}

// Region 页面区域
// Header 使用 Items，Body 使用 Sections，Footer 使用 Lines
type Region struct {
	Kind     RegionKind
	Items    []string
	Sections []Section
	Lines    []string
}

// Page 简历页
type Page struct {
	Title   string
	Regions []Region // 固定为 header, body, footer
}

// NewPage 根据配置组装页面
//
// 页眉为每个配置条目生成一项，保持声明顺序，文字原样保留（包括重复项）。
func NewPage(cfg *config.ResumeConfig) *Page {
	if cfg == nil {
		cfg = &config.ResumeConfig{}
	}

	sections := make([]Section, 0, len(cfg.Body.Sections))
	for _, s := range cfg.Body.Sections {
		sections = append(sections, Section{
			Heading:    s.Heading,
			Paragraphs: slices.Clone(s.Paragraphs),
		})
	}

	return &Page{
		Title: cfg.Title,
		Regions: []Region{
			{Kind: RegionHeader, Items: slices.Clone(cfg.Header.Items)},
			{Kind: RegionBody, Sections: sections},
			{Kind: RegionFooter, Lines: slices.Clone(cfg.Footer.Lines)},
		},
	}
}

// Header 返回页眉区域
func (p *Page) Header() Region { return p.region(RegionHeader) }

// Body 返回正文区域
func (p *Page) Body() Region { return p.region(RegionBody) }

// Footer 返回页脚区域
func (p *Page) Footer() Region { return p.region(RegionFooter) }

func (p *Page) region(kind RegionKind) Region {
	for _, r := range p.Regions {
		if r.Kind == kind {
			return r
		}
	}
	return Region{Kind: kind}
}
