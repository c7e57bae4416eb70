package markup

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Write serialises nodes to w. It is the only place tree nodes become markup.
func Write(w io.Writer, nodes ...*html.Node) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("markup: render %s: %w", describe(node), err)
		}
	}
	return nil
}

// Bytes serialises nodes into a new buffer.
func Bytes(nodes ...*html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, nodes...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String serialises nodes into a string.
func String(nodes ...*html.Node) (string, error) {
	out, err := Bytes(nodes...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func describe(node *html.Node) string {
	switch node.Type {
	case html.ElementNode:
		return "<" + node.Data + ">"
	case html.TextNode:
		return "text node"
	case html.DocumentNode:
		return "fragment"
	default:
		return "node"
	}
}
