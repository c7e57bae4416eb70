package markup

import (
	"strconv"

	"golang.org/x/net/html"
)

// Action names what a bound node asks the orchestrator to do.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionSubmit Action = "submit"
)

// Binding ties a rendered node to an action on one field.
type Binding struct {
	Node    *html.Node
	Action  Action
	FieldID int
}

// Bindings maps rendered nodes to (action, field id) pairs so callers can wire
// real dispatch without the tree embedding handler code.
type Bindings struct {
	list   []Binding
	byNode map[*html.Node]int
}

// Bind records the binding and mirrors it onto the node as data-action and
// data-field attributes for surfaces that only see serialised markup. A nil
// receiver only writes the attributes.
func (b *Bindings) Bind(node *html.Node, action Action, fieldID int) {
	if node == nil {
		return
	}
	SetAttr(node, "data-action", string(action))
	SetAttr(node, "data-field", strconv.Itoa(fieldID))
	if b == nil {
		return
	}
	if b.byNode == nil {
		b.byNode = make(map[*html.Node]int)
	}

	if idx, ok := b.byNode[node]; ok {
		b.list[idx] = Binding{Node: node, Action: action, FieldID: fieldID}
		return
	}
	b.byNode[node] = len(b.list)
	b.list = append(b.list, Binding{Node: node, Action: action, FieldID: fieldID})
}

// Lookup returns the binding for node.
func (b *Bindings) Lookup(node *html.Node) (Binding, bool) {
	if b == nil || b.byNode == nil {
		return Binding{}, false
	}
	idx, ok := b.byNode[node]
	if !ok {
		return Binding{}, false
	}
	return b.list[idx], true
}

// All returns the bindings in render order.
func (b *Bindings) All() []Binding {
	if b == nil {
		return nil
	}
	return append([]Binding(nil), b.list...)
}

// ForField returns the actions bound for one field id in render order.
func (b *Bindings) ForField(fieldID int) []Action {
	if b == nil {
		return nil
	}
	var out []Action
	for _, binding := range b.list {
		if binding.FieldID == fieldID {
			out = append(out, binding.Action)
		}
	}
	return out
}

// Len reports the number of bindings.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.list)
}
