package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// richNode is one node of the admin editor's document tree. Leaves carry
// Text plus mark flags; containers carry Type and Children.
type richNode struct {
	Type          string     `json:"type"`
	Level         int        `json:"level"`
	Href          string     `json:"href"`
	Text          *string    `json:"text"`
	Bold          bool       `json:"bold"`
	Italic        bool       `json:"italic"`
	Underline     bool       `json:"underline"`
	Strikethrough bool       `json:"strikethrough"`
	Code          bool       `json:"code"`
	Children      []richNode `json:"children"`
}

// RichTextHTML converts a stored rich-text document to HTML. The payload is
// either the node array itself or wrapped as {"document": [...]}; unknown
// node types render their children so new editor blocks degrade instead of
// disappearing.
func RichTextHTML(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var nodes []richNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		var wrapped struct {
			Document []richNode `json:"document"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return ""
		}
		nodes = wrapped.Document
	}

	var b strings.Builder
	for _, node := range nodes {
		renderNode(&b, node)
	}
	return b.String()
}

func renderNode(b *strings.Builder, node richNode) {
	if node.Text != nil {
		renderLeaf(b, node)
		return
	}

	switch node.Type {
	case "paragraph":
		b.WriteString("<p>")
		renderChildren(b, node.Children)
		b.WriteString("</p>")
	case "heading":
		level := node.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(b, "<h%d>", level)
		renderChildren(b, node.Children)
		fmt.Fprintf(b, "</h%d>", level)
	case "unordered-list":
		b.WriteString("<ul>")
		renderChildren(b, node.Children)
		b.WriteString("</ul>")
	case "ordered-list":
		b.WriteString("<ol>")
		renderChildren(b, node.Children)
		b.WriteString("</ol>")
	case "list-item":
		b.WriteString("<li>")
		renderChildren(b, node.Children)
		b.WriteString("</li>")
	case "blockquote":
		b.WriteString("<blockquote>")
		renderChildren(b, node.Children)
		b.WriteString("</blockquote>")
	case "divider":
		b.WriteString("<hr>")
	case "link":
		fmt.Fprintf(b, `<a href="%s" rel="noopener noreferrer">`, html.EscapeString(safeHref(node.Href)))
		renderChildren(b, node.Children)
		b.WriteString("</a>")
	default:
		renderChildren(b, node.Children)
	}
}

func renderChildren(b *strings.Builder, nodes []richNode) {
	for _, n := range nodes {
		renderNode(b, n)
	}
}

func renderLeaf(b *strings.Builder, node richNode) {
	text := *node.Text
	if text == "" {
		return
	}
	escaped := strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")

	var open, closing []string
	if node.Bold {
		open = append(open, "<strong>")
		closing = append([]string{"</strong>"}, closing...)
	}
	if node.Italic {
		open = append(open, "<em>")
		closing = append([]string{"</em>"}, closing...)
	}
	if node.Underline {
		open = append(open, "<u>")
		closing = append([]string{"</u>"}, closing...)
	}
	if node.Strikethrough {
		open = append(open, "<s>")
		closing = append([]string{"</s>"}, closing...)
	}
	if node.Code {
		open = append(open, "<code>")
		closing = append([]string{"</code>"}, closing...)
	}

	for _, tag := range open {
		b.WriteString(tag)
	}
	b.WriteString(escaped)
	for _, tag := range closing {
		b.WriteString(tag)
	}
}

// safeHref refuses script-bearing URL schemes.
func safeHref(href string) string {
	trimmed := strings.TrimSpace(strings.ToLower(href))
	if strings.HasPrefix(trimmed, "javascript:") || strings.HasPrefix(trimmed, "data:") {
		return "#"
	}
	return href
}
