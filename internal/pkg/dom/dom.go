// Package dom implements the document-reader side of the fetch boundary:
// parsing HTML snippets returned by a fetch session into fragments that
// adapters can query by tag and class. The selector surface is deliberately
// small (tag, .class, descendant chains); everything adapters need resolves
// to those.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Fragment is one node of a parsed document.
type Fragment struct {
	node *html.Node
}

// Parse parses an HTML snippet (a full page or a single element's outer
// HTML) into a root fragment.
func Parse(s string) (*Fragment, error) {
	n, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return &Fragment{node: n}, nil
}

// Select returns all descendant fragments matching the selector, in
// document order. Selectors are space-separated simple steps, each step
// an optional tag name plus zero or more .class suffixes, e.g.
// "div.option-row", "tbody tr", "ms-option.option".
func (f *Fragment) Select(selector string) []*Fragment {
	steps := parseSelector(selector)
	if len(steps) == 0 {
		return nil
	}
	current := []*html.Node{f.node}
	for _, step := range steps {
		var next []*html.Node
		for _, n := range current {
			collectMatches(n, step, &next)
		}
		current = next
	}
	out := make([]*Fragment, len(current))
	for i, n := range current {
		out[i] = &Fragment{node: n}
	}
	return out
}

// SelectOne returns the first match or nil.
func (f *Fragment) SelectOne(selector string) *Fragment {
	matches := f.Select(selector)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Text returns the concatenated text content with whitespace collapsed.
func (f *Fragment) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(f.node)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Attr returns the value of the named attribute, or "".
func (f *Fragment) Attr(name string) string {
	for _, a := range f.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Classes returns the element's class list.
func (f *Fragment) Classes() []string {
	return strings.Fields(f.Attr("class"))
}

type selectorStep struct {
	tag     string
	classes []string
}

func parseSelector(selector string) []selectorStep {
	var steps []selectorStep
	for _, raw := range strings.Fields(selector) {
		parts := strings.Split(raw, ".")
		step := selectorStep{tag: parts[0]}
		for _, c := range parts[1:] {
			if c != "" {
				step.classes = append(step.classes, c)
			}
		}
		steps = append(steps, step)
	}
	return steps
}

func matches(n *html.Node, step selectorStep) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if step.tag != "" && n.Data != step.tag {
		return false
	}
	if len(step.classes) == 0 {
		return true
	}
	var classAttr string
	for _, a := range n.Attr {
		if a.Key == "class" {
			classAttr = a.Val
			break
		}
	}
	have := strings.Fields(classAttr)
	for _, want := range step.classes {
		found := false
		for _, c := range have {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// collectMatches gathers matching descendants of root (root excluded).
// A matching node's own subtree is still searched: nested blocks of the
// same class occur on real pages.
func collectMatches(root *html.Node, step selectorStep, out *[]*html.Node) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if matches(c, step) {
			*out = append(*out, c)
		}
		collectMatches(c, step, out)
	}
}
