// Package tfgraph models a frozen, shape-annotated TensorFlow graph: the
// input of the conversion pass in the parent package.
//
// The model is deliberately small. Nodes carry a closed OpKind, typed
// attributes and the endpoint names of their inputs; every output carries the
// static shape annotated by the producer of the graph. Const nodes carry
// their value pre-resolved as a Tensor, so conversion never evaluates
// anything.
//
// Endpoint names follow the TensorFlow convention "<node>:<index>", with a
// bare "<node>" addressing output 0.
package tfgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Output is one output endpoint of a Node, with its static shape.
// A nil Shape means the shape is unknown; conversion treats it as scalar-like.
type Output struct {
	Name  string
	Shape []int
}

// Node is one op of the source graph.
type Node struct {
	Name    string
	Kind    OpKind
	Inputs  []string // Endpoint names, in op order.
	Outputs []Output
	Attrs   map[string]AttrValue

	// Value is the pre-resolved constant payload, set iff Kind == KindConst.
	Value *Tensor
}

// SetAttr sets one attribute and returns the node, so calls can be chained
// when building graphs by hand.
func (n *Node) SetAttr(name string, value AttrValue) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]AttrValue)
	}
	n.Attrs[name] = value
	return n
}

// NewConst creates a Const node holding the given pre-resolved tensor, with
// its single output endpoint "<name>:0" shaped like the tensor.
func NewConst(name string, value *Tensor) *Node {
	return &Node{
		Name:    name,
		Kind:    KindConst,
		Outputs: []Output{{Name: Endpoint(name, 0), Shape: value.Dims}},
		Value:   value,
	}
}

// NewPlaceholder creates a Placeholder node with a single output endpoint
// "<name>:0" of the given static shape.
func NewPlaceholder(name string, shape []int) *Node {
	return &Node{
		Name:    name,
		Kind:    KindPlaceholder,
		Outputs: []Output{{Name: Endpoint(name, 0), Shape: shape}},
	}
}

// Graph is a frozen graph: a sequence of nodes in topological order
// (producers before consumers), indexed by name.
type Graph struct {
	nodes  []*Node
	byName map[string]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]*Node)}
}

// Add appends a node to the graph. Nodes must be added in topological order.
// It fails if the node has no name, a duplicate name or an invalid kind.
func (g *Graph) Add(node *Node) error {
	if node.Name == "" {
		return errors.New("cannot add a node with an empty name")
	}
	if !node.Kind.IsAOpKind() || node.Kind == KindInvalid {
		return errors.Errorf("node %q has invalid op kind %d", node.Name, node.Kind)
	}
	if _, found := g.byName[node.Name]; found {
		return errors.Errorf("duplicate node name %q", node.Name)
	}
	g.nodes = append(g.nodes, node)
	g.byName[node.Name] = node
	return nil
}

// Nodes returns the graph nodes in the order they were added.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NodeByName returns the node with the given name, or nil if there is none.
func (g *Graph) NodeByName(name string) *Node { return g.byName[name] }

// Producer resolves an endpoint name to its producing node and output index.
func (g *Graph) Producer(endpoint string) (*Node, int, error) {
	name, index, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, 0, err
	}
	node := g.byName[name]
	if node == nil {
		return nil, 0, errors.Errorf("endpoint %q refers to unknown node %q", endpoint, name)
	}
	if index >= len(node.Outputs) {
		return nil, 0, errors.Errorf("endpoint %q refers to output %d of node %q, which has only %d output(s)",
			endpoint, index, name, len(node.Outputs))
	}
	return node, index, nil
}

// OutputShape returns the static shape annotated on the endpoint.
func (g *Graph) OutputShape(endpoint string) ([]int, error) {
	node, index, err := g.Producer(endpoint)
	if err != nil {
		return nil, err
	}
	return node.Outputs[index].Shape, nil
}

// Endpoint builds the endpoint name of the index-th output of a node.
func Endpoint(node string, index int) string {
	return fmt.Sprintf("%s:%d", node, index)
}

// ParseEndpoint splits an endpoint name into node name and output index.
// A name without a ":<index>" suffix addresses output 0.
func ParseEndpoint(endpoint string) (node string, index int, err error) {
	sep := strings.LastIndexByte(endpoint, ':')
	if sep == -1 {
		node = endpoint
	} else {
		node = endpoint[:sep]
		index, err = strconv.Atoi(endpoint[sep+1:])
		if err != nil || index < 0 {
			return "", 0, errors.Errorf("invalid output index in endpoint %q", endpoint)
		}
	}
	if node == "" {
		return "", 0, errors.Errorf("invalid endpoint %q: empty node name", endpoint)
	}
	return node, index, nil
}
