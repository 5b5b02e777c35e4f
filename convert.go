package tfmir

import (
	"slices"

	"github.com/gomlx/tfmir/mir"
	"github.com/gomlx/tfmir/tfgraph"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config selects the graph boundary of a conversion. A nil Config converts
// the graph as-is.
type Config struct {
	// InputShapes overrides the static shape of the default output of the
	// named nodes, before any op is converted. Keys may name the node
	// ("input") or its default endpoint ("input:0").
	InputShapes map[string][]int

	// OutputNames lists the nodes whose outputs the caller will read.
	// Endpoint names at the boundary are shortened to these names, see
	// the package documentation.
	OutputNames []string
}

// convertFunc rewrites one source node into the net being built.
type convertFunc func(*converter, *tfgraph.Node) error

// opConverters is the closed dispatch table: one rule per supported source op
// kind. Kinds absent here fail conversion with ErrUnsupportedOp.
var opConverters = map[tfgraph.OpKind]convertFunc{
	tfgraph.KindConv2D:                (*converter).convertConv,
	tfgraph.KindDepthwiseConv2dNative: (*converter).convertConv,
	tfgraph.KindConv2DBackpropInput:   (*converter).convertConv,
	tfgraph.KindBiasAdd:               (*converter).convertBiasAdd,
	tfgraph.KindFusedBatchNorm:        (*converter).convertFusedBatchNorm,
	tfgraph.KindAvgPool:               (*converter).convertPooling,
	tfgraph.KindMaxPool:               (*converter).convertPooling,
	tfgraph.KindMatMul:                (*converter).convertMatMul,

	tfgraph.KindAdd:               (*converter).convertAdd,
	tfgraph.KindSub:               (*converter).convertEltwise,
	tfgraph.KindMul:               (*converter).convertEltwise,
	tfgraph.KindDiv:               (*converter).convertEltwise,
	tfgraph.KindRealDiv:           (*converter).convertEltwise,
	tfgraph.KindMin:               (*converter).convertEltwise,
	tfgraph.KindMax:               (*converter).convertEltwise,
	tfgraph.KindNeg:               (*converter).convertEltwise,
	tfgraph.KindAbs:               (*converter).convertEltwise,
	tfgraph.KindSquaredDifference: (*converter).convertEltwise,
	tfgraph.KindPow:               (*converter).convertEltwise,

	tfgraph.KindRelu:    (*converter).convertActivation,
	tfgraph.KindRelu6:   (*converter).convertActivation,
	tfgraph.KindTanh:    (*converter).convertActivation,
	tfgraph.KindSigmoid: (*converter).convertActivation,
	tfgraph.KindSoftmax: (*converter).convertSoftmax,

	tfgraph.KindReshape:        (*converter).convertReshape,
	tfgraph.KindSqueeze:        (*converter).convertIdentity,
	tfgraph.KindIdentity:       (*converter).convertIdentity,
	tfgraph.KindTranspose:      (*converter).convertTranspose,
	tfgraph.KindResizeBilinear: (*converter).convertResizeBilinear,
	tfgraph.KindSpaceToBatchND: (*converter).convertSpaceBatch,
	tfgraph.KindBatchToSpaceND: (*converter).convertSpaceBatch,
	tfgraph.KindDepthToSpace:   (*converter).convertSpaceDepth,
	tfgraph.KindSpaceToDepth:   (*converter).convertSpaceDepth,
	tfgraph.KindPad:            (*converter).convertPad,
	tfgraph.KindConcatV2:       (*converter).convertConcat,
	tfgraph.KindMean:           (*converter).convertMean,

	// Structural nodes that don't become ops: Placeholder marks a graph
	// input, Shape is consumed by the Reshape rule, Const by the tensor
	// emitter.
	tfgraph.KindPlaceholder: (*converter).convertNop,
	tfgraph.KindShape:       (*converter).convertNop,
	tfgraph.KindConst:       (*converter).convertNop,
}

// converter holds the state of one conversion: the source graph, the net
// being built and the set of constant endpoints folded so far. It is used by
// a single goroutine and discarded when Convert returns.
type converter struct {
	graph *tfgraph.Graph
	cfg   Config
	net   *mir.Net

	// skip collects the endpoints of constants consumed by conversion rules;
	// the tensor emitter leaves them out of the net.
	skip map[string]bool

	// outputNames is cfg.OutputNames as a set.
	outputNames map[string]bool
}

// Convert translates a frozen graph into a net, applying the boundary
// configuration. The graph is not modified. It fails with an error wrapping
// ErrUnsupportedOp or ErrUnsupportedPattern on the first op it cannot
// translate, and with a plain error on malformed input.
func Convert(graph *tfgraph.Graph, cfg *Config) (*mir.Net, error) {
	if graph == nil {
		return nil, errors.New("cannot convert a nil graph")
	}
	c := &converter{
		graph:       graph,
		net:         &mir.Net{FilterFormat: mir.HWIO},
		skip:        make(map[string]bool),
		outputNames: make(map[string]bool),
	}
	if cfg != nil {
		c.cfg = *cfg
	}
	for _, name := range c.cfg.OutputNames {
		c.outputNames[name] = true
	}

	klog.V(1).Infof("converting graph with %d node(s)", graph.NumNodes())
	for _, node := range graph.Nodes() {
		fn, found := opConverters[node.Kind]
		if !found {
			return nil, errors.Wrapf(ErrUnsupportedOp, "op %q of kind %s", node.Name, node.Kind)
		}
		klog.V(2).Infof("converting op %q (%s)", node.Name, node.Kind)
		if err := fn(c, node); err != nil {
			return nil, errors.WithMessagef(err, "converting op %q (%s)", node.Name, node.Kind)
		}
	}
	if err := c.emitTensors(); err != nil {
		return nil, err
	}
	c.rewriteBoundaryNames()
	klog.V(1).Infof("converted graph to %d op(s) and %d tensor(s)", len(c.net.Ops), len(c.net.Tensors))
	return c.net, nil
}

// inputShapeOverride returns the configured shape for a node's default
// output, honoring both the bare name and the "name:0" spelling of the key.
func (c *converter) inputShapeOverride(nodeName string) ([]int, bool) {
	if len(c.cfg.InputShapes) == 0 {
		return nil, false
	}
	if shape, found := c.cfg.InputShapes[nodeName]; found {
		return shape, true
	}
	shape, found := c.cfg.InputShapes[nodeName+":0"]
	return shape, found
}

// outputShape returns the static shape of an endpoint, with the configured
// input shapes taking precedence over the graph annotation.
func (c *converter) outputShape(endpoint string) ([]int, error) {
	node, index, err := c.graph.Producer(endpoint)
	if err != nil {
		return nil, err
	}
	if index == 0 {
		if shape, found := c.inputShapeOverride(node.Name); found {
			return slices.Clone(shape), nil
		}
	}
	return slices.Clone(node.Outputs[index].Shape), nil
}

// newOpFromNode builds the common part of every converted op: name, inputs,
// outputs with their shapes, and the NHWC data-format argument. Rules then
// adjust inputs and append their own arguments, and only completed ops reach
// the net.
func (c *converter) newOpFromNode(node *tfgraph.Node) *mir.Op {
	op := &mir.Op{
		Name:         node.Name,
		Inputs:       slices.Clone(node.Inputs),
		Outputs:      make([]string, 0, len(node.Outputs)),
		OutputShapes: make([][]int, 0, len(node.Outputs)),
	}
	for i, out := range node.Outputs {
		op.Outputs = append(op.Outputs, out.Name)
		shape := out.Shape
		if i == 0 {
			if override, found := c.inputShapeOverride(node.Name); found {
				shape = override
			}
		}
		op.OutputShapes = append(op.OutputShapes, slices.Clone(shape))
	}
	op.AddArg(mir.IntArg(mir.ArgDataFormat, int(mir.NHWC)))
	return op
}

func (c *converter) convertNop(*tfgraph.Node) error { return nil }
