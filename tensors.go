package tfmir

import (
	"slices"

	"github.com/gomlx/tfmir/mir"
	"github.com/gomlx/tfmir/tfgraph"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Constant materialization: rules that fold a constant input (a permutation,
// a paddings table, batch-norm parameters) resolve it here and then mark the
// endpoint with skipTensor, so the emitter leaves it out of the net.

// materialize resolves an endpoint to the pre-resolved value of the Const
// node producing it. Anything but a Const producer is an unsupported pattern:
// the runtime has no way to compute the value the op expects to be static.
func (c *converter) materialize(endpoint string) (*tfgraph.Tensor, error) {
	node, index, err := c.graph.Producer(endpoint)
	if err != nil {
		return nil, err
	}
	if node.Kind != tfgraph.KindConst {
		return nil, errors.Wrapf(ErrUnsupportedPattern, "endpoint %q is produced by %q (%s), not by a constant",
			endpoint, node.Name, node.Kind)
	}
	if index != 0 || node.Value == nil {
		return nil, errors.Errorf("constant %q has no resolved value for endpoint %q", node.Name, endpoint)
	}
	return node.Value, nil
}

// materializeInts materializes an int32 constant widened to []int.
func (c *converter) materializeInts(endpoint string) ([]int, error) {
	t, err := c.materialize(endpoint)
	if err != nil {
		return nil, err
	}
	if t.DType != tfgraph.DTypeInt32 {
		return nil, errors.Errorf("constant %q must be of type Int32, got %s", endpoint, t.DType)
	}
	return t.Ints(), nil
}

// materializeFloats materializes a float32 constant.
func (c *converter) materializeFloats(endpoint string) ([]float32, error) {
	t, err := c.materialize(endpoint)
	if err != nil {
		return nil, err
	}
	if t.DType != tfgraph.DTypeFloat {
		return nil, errors.Errorf("constant %q must be of type Float, got %s", endpoint, t.DType)
	}
	return t.Floats, nil
}

// materializeScalarInt materializes a single-element constant as an int,
// truncating a float payload.
func (c *converter) materializeScalarInt(endpoint string) (int, error) {
	t, err := c.materialize(endpoint)
	if err != nil {
		return 0, err
	}
	if t.Size() != 1 {
		return 0, errors.Errorf("constant %q must be a scalar, got dimensions %v", endpoint, t.Dims)
	}
	switch t.DType {
	case tfgraph.DTypeInt32:
		return int(t.Int32s[0]), nil
	case tfgraph.DTypeFloat:
		return int(t.Floats[0]), nil
	}
	return 0, errors.Errorf("constant %q must be of type Int32 or Float, got %s", endpoint, t.DType)
}

// skipTensor marks a constant endpoint as folded into the op that consumed
// it. Every rule that materializes an endpoint must skip it in the same step.
// The mark is recorded under the producer's declared output name, so a
// consumer spelling output 0 bare still suppresses the tensor.
func (c *converter) skipTensor(endpoint string) {
	klog.V(2).Infof("folding constant %q", endpoint)
	if node, index, err := c.graph.Producer(endpoint); err == nil {
		endpoint = node.Outputs[index].Name
	}
	c.skip[endpoint] = true
}

// emitTensors appends one net tensor per Const node not folded by any rule.
// Nodes are visited in graph order, so the output is deterministic.
func (c *converter) emitTensors() error {
	for _, node := range c.graph.Nodes() {
		if node.Kind != tfgraph.KindConst {
			continue
		}
		if len(node.Outputs) == 0 {
			return errors.Errorf("constant %q has no output endpoint", node.Name)
		}
		endpoint := node.Outputs[0].Name
		if c.skip[endpoint] {
			continue
		}
		value := node.Value
		if value == nil {
			return errors.Errorf("constant %q has no resolved value", node.Name)
		}
		t := &mir.Tensor{Name: endpoint, Dims: slices.Clone(value.Dims)}
		switch value.DType {
		case tfgraph.DTypeFloat:
			t.DataType = mir.Float32
			t.Floats = slices.Clone(value.Floats)
		case tfgraph.DTypeInt32:
			t.DataType = mir.Int32
			t.Int32s = slices.Clone(value.Int32s)
		default:
			return errors.Wrapf(ErrUnsupportedPattern, "tensor type %s of constant %q", value.DType, node.Name)
		}
		klog.V(2).Infof("emitting tensor %q (%s%v)", endpoint, t.DataType, t.Dims)
		c.net.AddTensor(t)
	}
	return nil
}
