package crawler

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
	spaceRunsRe = regexp.MustCompile(`[ \t]{2,}`)
)

// skippedTags never contribute text to the markdown rendering.
var skippedTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
	"noscript": true,
}

// headingLevels maps heading tags to their markdown prefix depth.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// renderMarkdown flattens HTML nodes into the markdown-like text the
// extractor expects: "#"-prefixed headings, blank-line separated
// paragraphs, "- " list items, and [text](href) links.
func renderMarkdown(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		renderNode(&sb, n)
	}
	return tidyMarkdown(sb.String())
}

func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteByte(' ')
		}
		return
	case html.ElementNode:
		// handled below
	default:
		return
	}

	if skippedTags[n.Data] {
		return
	}

	if level, ok := headingLevels[n.Data]; ok {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteByte(' ')
		sb.WriteString(strings.TrimSpace(nodeText(n)))
		sb.WriteString("\n\n")
		return
	}

	switch n.Data {
	case "p", "div", "section", "article":
		sb.WriteString("\n\n")
		renderChildren(sb, n)
		sb.WriteString("\n\n")
	case "li":
		sb.WriteString("\n- ")
		renderChildren(sb, n)
	case "br":
		sb.WriteByte('\n')
	case "a":
		text := strings.TrimSpace(nodeText(n))
		href := attr(n, "href")
		if text != "" && href != "" {
			sb.WriteString("[" + text + "](" + href + ") ")
			return
		}
		renderChildren(sb, n)
	default:
		renderChildren(sb, n)
	}
}

func renderChildren(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}
}

// nodeText concatenates all text beneath a node, skipping hidden tags.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
			return
		}
		if node.Type == html.ElementNode && skippedTags[node.Data] {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func tidyMarkdown(s string) string {
	s = spaceRunsRe.ReplaceAllString(s, " ")

	// Trim trailing spaces per line so heading regexes anchor cleanly.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")

	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
