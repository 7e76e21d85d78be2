// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/pdiddy/research-design/pkg/types"
)

const filenameSuffix = "_research-design-document"

// Filename returns the suggested export file name for a project:
// <project-name>_research-design-document.<ext>. Path separators and other
// characters that are unsafe in file names become hyphens; an empty project
// name becomes "untitled".
func Filename(projectName string, format types.ExportFormat) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = "untitled"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		}
		return r
	}, name)
	return name + filenameSuffix + "." + format.Ext()
}

// ToHTML converts a rendered Markdown document into a complete HTML page.
func ToHTML(md, title string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(md), p, r)
}

// Export renders d in the given format. Markdown is returned as is; HTML is
// a complete page titled with the project name.
func (a *Assembler) Export(d *types.ResearchDraft, format types.ExportFormat) []byte {
	md := a.Render(d)
	if format != types.FormatHTML {
		return []byte(md)
	}
	title := Title
	if d != nil && strings.TrimSpace(d.ProjectName) != "" {
		title = d.ProjectName + " - " + Title
	}
	return ToHTML(md, title)
}
