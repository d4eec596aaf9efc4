package template

import (
	stdtemplate "html/template"

	blackfriday "gopkg.in/russross/blackfriday.v2"
)

// Template renders recruiter-authored free text into HTML fragments for the
// public careers page.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

func (t *Template) StringToHTML(s string) stdtemplate.HTML {
	return stdtemplate.HTML(s)
}

func (t *Template) JSEscapeString(s string) string {
	return stdtemplate.JSEscapeString(s)
}

// MarkdownToHTML renders section content. HardLineBreak keeps embedded
// newlines visible as line breaks, matching how recruiters type the text in.
func (t *Template) MarkdownToHTML(s string) stdtemplate.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	return stdtemplate.HTML(blackfriday.Run(
		[]byte(s),
		blackfriday.WithRenderer(renderer),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak),
	))
}
