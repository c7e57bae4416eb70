package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr builds a key/value attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Flag builds a boolean attribute such as required or selected.
func Flag(key string) html.Attribute {
	return html.Attribute{Key: key}
}

// Element creates a detached element node.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		node.Attr = slices.Clone(attrs)
	}
	return node
}

// Text creates a detached text node. The writer escapes it.
func Text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

// Append attaches children to parent in order and returns parent. Nil
// children are skipped.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		parent.AppendChild(child)
	}
	return parent
}

// Fragment wraps nodes in a document node so several top-level nodes can be
// passed around as one tree.
func Fragment(children ...*html.Node) *html.Node {
	return Append(&html.Node{Type: html.DocumentNode}, children...)
}

// AttrValue returns the value of key on node.
func AttrValue(node *html.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether node carries key, boolean attributes included.
func HasAttr(node *html.Node, key string) bool {
	_, ok := AttrValue(node, key)
	return ok
}

// SetAttr replaces or adds key on node.
func SetAttr(node *html.Node, key, val string) {
	for i := range node.Attr {
		if node.Attr[i].Namespace == "" && node.Attr[i].Key == key {
			node.Attr[i].Val = val
			return
		}
	}
	node.Attr = append(node.Attr, Attr(key, val))
}

// Classes returns the class list of node.
func Classes(node *html.Node) []string {
	value, _ := AttrValue(node, "class")
	return strings.Fields(value)
}

// HasClass reports whether node's class list contains name.
func HasClass(node *html.Node, name string) bool {
	return slices.Contains(Classes(node), name)
}

// AddClass appends name to node's class list when missing.
func AddClass(node *html.Node, name string) {
	classes := Classes(node)
	if slices.Contains(classes, name) {
		return
	}
	SetAttr(node, "class", strings.Join(append(classes, name), " "))
}

// RemoveClass drops name from node's class list. The class attribute is
// removed entirely once empty.
func RemoveClass(node *html.Node, name string) {
	classes := Classes(node)
	idx := slices.Index(classes, name)
	if idx < 0 {
		return
	}
	classes = slices.Delete(classes, idx, idx+1)
	if len(classes) == 0 {
		node.Attr = slices.DeleteFunc(node.Attr, func(attr html.Attribute) bool {
			return attr.Namespace == "" && attr.Key == "class"
		})
		return
	}
	SetAttr(node, "class", strings.Join(classes, " "))
}

// Walk visits node and its descendants depth first in document order. When
// visit returns false the node's children are skipped.
func Walk(node *html.Node, visit func(*html.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		Walk(child, visit)
	}
}

// Find returns every element below (and including) root that matches.
func Find(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(root, func(node *html.Node) bool {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Children returns the element children of node.
func Children(node *html.Node) []*html.Node {
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}

// TextContent concatenates every text node below node.
func TextContent(node *html.Node) string {
	var b strings.Builder
	Walk(node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}
