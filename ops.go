package tfmir

import (
	"slices"
	"strings"

	"github.com/chewxy/math32"
	"github.com/gomlx/tfmir/mir"
	"github.com/gomlx/tfmir/tfgraph"
	"github.com/pkg/errors"
)

// The per-op conversion rules. Each takes one source node, builds the
// corresponding net op from the newOpFromNode template and appends it, fully
// formed, to the net. Rules that consume constant inputs materialize them and
// mark them with skipTensor.

// convertConv handles Conv2D, DepthwiseConv2dNative and Conv2DBackpropInput.
// The filter (and the output-shape constant of a deconvolution) stays a
// regular input, served by the tensor emitter.
func (c *converter) convertConv(node *tfgraph.Node) error {
	mode, err := paddingMode(node)
	if err != nil {
		return err
	}
	strides, err := spatialPair(node, attrStrides)
	if err != nil {
		return err
	}

	op := c.newOpFromNode(node)
	switch node.Kind {
	case tfgraph.KindDepthwiseConv2dNative:
		op.Type = mir.DepthwiseConv2d
	case tfgraph.KindConv2DBackpropInput:
		op.Type = mir.Deconv2D
	default:
		op.Type = mir.Conv2D
	}
	op.AddArg(
		mir.IntArg(mir.ArgPadding, int(mode)),
		mir.IntsArg(mir.ArgStrides, strides...),
	)
	if op.Type != mir.Deconv2D {
		dilations, err := dilations(node)
		if err != nil {
			return err
		}
		op.AddArg(mir.IntsArg(mir.ArgDilations, dilations...))
	}
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertEltwise(node *tfgraph.Node) error {
	kind, found := eltwiseKinds[node.Kind]
	if !found {
		return errors.Errorf("op kind %s has no element-wise mapping", node.Kind)
	}
	op := c.newOpFromNode(node)
	op.Type = mir.Eltwise
	op.AddArg(mir.IntArg(mir.ArgEltwiseType, int(kind)))
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertBiasAdd(node *tfgraph.Node) error {
	op := c.newOpFromNode(node)
	op.Type = mir.BiasAdd
	c.net.AddOp(op)
	return nil
}

// convertAdd keeps a two-addend Add element-wise; with more addends it
// becomes an AddN.
func (c *converter) convertAdd(node *tfgraph.Node) error {
	if len(node.Inputs) == 2 {
		return c.convertEltwise(node)
	}
	op := c.newOpFromNode(node)
	op.Type = mir.AddN
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertActivation(node *tfgraph.Node) error {
	kind, found := activationKinds[node.Kind]
	if !found {
		return errors.Errorf("op kind %s has no activation mapping", node.Kind)
	}
	op := c.newOpFromNode(node)
	op.Type = mir.Activation
	op.AddArg(mir.StrArg(mir.ArgActivationType, kind.String()))
	if node.Kind == tfgraph.KindRelu6 {
		op.AddArg(mir.FloatArg(mir.ArgMaxLimit, 6.0))
	}
	c.net.AddOp(op)
	return nil
}

// convertFusedBatchNorm folds the four batch-norm parameters and epsilon into
// two synthesized tensors, named after the scope of the node:
//
//	scale  = gamma / sqrt(variance + epsilon)
//	offset = beta - mean*scale
//
// The folded op reads the data input plus the two tensors and keeps only the
// normalized output; the mean/variance outputs of the source node disappear.
func (c *converter) convertFusedBatchNorm(node *tfgraph.Node) error {
	if len(node.Inputs) != 5 {
		return errors.Errorf("op %q (%s) must have 5 inputs (data, gamma, beta, mean, variance), got %d",
			node.Name, node.Kind, len(node.Inputs))
	}
	gammaTensor, err := c.materialize(node.Inputs[1])
	if err != nil {
		return err
	}
	if gammaTensor.DType != tfgraph.DTypeFloat {
		return errors.Errorf("batch-norm parameter %q must be of type Float, got %s",
			node.Inputs[1], gammaTensor.DType)
	}
	gamma := gammaTensor.Floats
	beta, err := c.materializeFloats(node.Inputs[2])
	if err != nil {
		return err
	}
	mean, err := c.materializeFloats(node.Inputs[3])
	if err != nil {
		return err
	}
	variance, err := c.materializeFloats(node.Inputs[4])
	if err != nil {
		return err
	}
	if len(beta) != len(gamma) || len(mean) != len(gamma) || len(variance) != len(gamma) {
		return errors.Errorf("batch-norm parameters of op %q must have equal lengths, got %d/%d/%d/%d",
			node.Name, len(gamma), len(beta), len(mean), len(variance))
	}
	epsilon, found := node.AttrFloat(attrEpsilon)
	if !found {
		return attrError(node, attrEpsilon, "a float")
	}

	scale := make([]float32, len(gamma))
	offset := make([]float32, len(gamma))
	for i := range gamma {
		scale[i] = gamma[i] / math32.Sqrt(variance[i]+epsilon)
		offset[i] = beta[i] - mean[i]*scale[i]
	}

	scope := scopeOf(node.Name)
	scaleName := scope + "/scale:0"
	offsetName := scope + "/offset:0"
	c.net.AddTensor(&mir.Tensor{
		Name: scaleName, Dims: slices.Clone(gammaTensor.Dims),
		DataType: mir.Float32, Floats: scale,
	})
	c.net.AddTensor(&mir.Tensor{
		Name: offsetName, Dims: slices.Clone(gammaTensor.Dims),
		DataType: mir.Float32, Floats: offset,
	})
	for _, input := range node.Inputs[1:] {
		c.skipTensor(input)
	}

	op := c.newOpFromNode(node)
	op.Type = mir.FoldedBatchNorm
	op.Inputs = []string{node.Inputs[0], scaleName, offsetName}
	if len(op.Outputs) > 1 {
		op.Outputs = op.Outputs[:1]
		op.OutputShapes = op.OutputShapes[:1]
	}
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertPooling(node *tfgraph.Node) error {
	kind, found := poolingKinds[node.Kind]
	if !found {
		return errors.Errorf("op kind %s has no pooling mapping", node.Kind)
	}
	mode, err := paddingMode(node)
	if err != nil {
		return err
	}
	strides, err := spatialPair(node, attrStrides)
	if err != nil {
		return err
	}
	kernels, err := spatialPair(node, attrKSize)
	if err != nil {
		return err
	}
	op := c.newOpFromNode(node)
	op.Type = mir.Pooling
	op.AddArg(
		mir.IntArg(mir.ArgPoolingType, int(kind)),
		mir.IntArg(mir.ArgPadding, int(mode)),
		mir.IntsArg(mir.ArgStrides, strides...),
		mir.IntsArg(mir.ArgKernels, kernels...),
	)
	c.net.AddOp(op)
	return nil
}

// convertIdentity handles Identity and Squeeze: both pass their input
// through unchanged, shapes being static.
func (c *converter) convertIdentity(node *tfgraph.Node) error {
	op := c.newOpFromNode(node)
	op.Type = mir.Identity
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertMatMul(node *tfgraph.Node) error {
	op := c.newOpFromNode(node)
	op.Type = mir.MatMul
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertSoftmax(node *tfgraph.Node) error {
	op := c.newOpFromNode(node)
	op.Type = mir.Softmax
	c.net.AddOp(op)
	return nil
}

// convertReshape folds the target-shape input into a "shape" argument. A
// constant shape is taken literally, with every -1 turned into 1 (the
// batch dimension of inference nets is 1); a shape produced by a Shape op
// becomes the annotated shape of that op's input. Anything else leaves the
// argument empty for the runtime to infer.
func (c *converter) convertReshape(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have 2 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	producer, _, err := c.graph.Producer(node.Inputs[1])
	if err != nil {
		return err
	}
	var shape []int
	switch producer.Kind {
	case tfgraph.KindConst:
		shape, err = c.materializeInts(node.Inputs[1])
		if err != nil {
			return err
		}
		for i, dim := range shape {
			if dim == -1 {
				shape[i] = 1
			}
		}
		c.skipTensor(node.Inputs[1])
	case tfgraph.KindShape:
		if len(producer.Inputs) == 0 {
			return errors.Errorf("shape op %q feeding %q has no input", producer.Name, node.Name)
		}
		shape, err = c.outputShape(producer.Inputs[0])
		if err != nil {
			return err
		}
	}
	op := c.newOpFromNode(node)
	op.Type = mir.Reshape
	op.Inputs = op.Inputs[:1]
	op.AddArg(mir.IntsArg(mir.ArgShape, shape...))
	c.net.AddOp(op)
	return nil
}

// convertTranspose only accepts permutations that keep the order of
// dimensions, and turns them into Identity. Real transposes would need a
// layout change the runtime does not perform.
func (c *converter) convertTranspose(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have 2 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	perm, err := c.materializeInts(node.Inputs[1])
	if err != nil {
		return err
	}
	if !slices.IsSorted(perm) {
		return errors.Wrapf(ErrUnsupportedPattern, "op %q permutes dimensions with %v, only identity permutations are supported",
			node.Name, perm)
	}
	c.skipTensor(node.Inputs[1])
	op := c.newOpFromNode(node)
	op.Type = mir.Identity
	op.Inputs = op.Inputs[:1]
	c.net.AddOp(op)
	return nil
}

func (c *converter) convertResizeBilinear(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have 2 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	size, err := c.materializeInts(node.Inputs[1])
	if err != nil {
		return err
	}
	c.skipTensor(node.Inputs[1])
	alignCorners, found := node.AttrBool(attrAlignCorners)
	if !found {
		return attrError(node, attrAlignCorners, "a bool")
	}
	op := c.newOpFromNode(node)
	op.Type = mir.ResizeBilinear
	op.Inputs = op.Inputs[:1]
	op.AddArg(
		mir.IntsArg(mir.ArgSize, size...),
		mir.IntArg(mir.ArgAlignCorners, boolToInt(alignCorners)),
	)
	c.net.AddOp(op)
	return nil
}

// convertSpaceBatch handles SpaceToBatchND and BatchToSpaceND. Both fold the
// block shape; the third input is paddings for the former and crops for the
// latter, flattened row-major.
func (c *converter) convertSpaceBatch(node *tfgraph.Node) error {
	if len(node.Inputs) < 3 {
		return errors.Errorf("op %q (%s) must have 3 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	blockShape, err := c.materializeInts(node.Inputs[1])
	if err != nil {
		return err
	}
	amounts, err := c.materializeInts(node.Inputs[2])
	if err != nil {
		return err
	}
	c.skipTensor(node.Inputs[1])
	c.skipTensor(node.Inputs[2])
	op := c.newOpFromNode(node)
	op.Inputs = op.Inputs[:1]
	op.AddArg(mir.IntsArg(mir.ArgBlockShape, blockShape...))
	if node.Kind == tfgraph.KindBatchToSpaceND {
		op.Type = mir.BatchToSpaceND
		op.AddArg(mir.IntsArg(mir.ArgCrops, amounts...))
	} else {
		op.Type = mir.SpaceToBatchND
		op.AddArg(mir.IntsArg(mir.ArgPaddings, amounts...))
	}
	c.net.AddOp(op)
	return nil
}

// convertSpaceDepth handles SpaceToDepth and DepthToSpace, whose block size
// is an attribute rather than a constant input.
func (c *converter) convertSpaceDepth(node *tfgraph.Node) error {
	blockSize, found := node.AttrInt(attrBlockSize)
	if !found {
		return attrError(node, attrBlockSize, "an int")
	}
	op := c.newOpFromNode(node)
	if node.Kind == tfgraph.KindSpaceToDepth {
		op.Type = mir.SpaceToDepth
	} else {
		op.Type = mir.DepthToSpace
	}
	op.AddArg(mir.IntArg(mir.ArgBlockSize, int(blockSize)))
	c.net.AddOp(op)
	return nil
}

// convertPad folds the paddings table (flattened row-major) and, when
// present, the scalar fill value, truncated to an integer.
func (c *converter) convertPad(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have 2 or 3 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	paddings, err := c.materializeInts(node.Inputs[1])
	if err != nil {
		return err
	}
	c.skipTensor(node.Inputs[1])
	op := c.newOpFromNode(node)
	op.Type = mir.Pad
	op.Inputs = op.Inputs[:1]
	op.AddArg(mir.IntsArg(mir.ArgPaddings, paddings...))
	if len(node.Inputs) == 3 {
		fill, err := c.materializeScalarInt(node.Inputs[2])
		if err != nil {
			return err
		}
		c.skipTensor(node.Inputs[2])
		op.AddArg(mir.IntArg(mir.ArgConstantValue, fill))
	}
	c.net.AddOp(op)
	return nil
}

// convertConcat folds the trailing axis input. Negative axes count from the
// end of a rank-4 shape; anything but the channel axis is unsupported.
func (c *converter) convertConcat(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have at least 2 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	axisEndpoint := node.Inputs[len(node.Inputs)-1]
	axis, err := c.materializeScalarInt(axisEndpoint)
	if err != nil {
		return err
	}
	if axis < 0 {
		axis += 4
	}
	if axis != 3 {
		return errors.Wrapf(ErrUnsupportedPattern, "op %q concatenates along axis %d, only the channel axis (3) is supported",
			node.Name, axis)
	}
	c.skipTensor(axisEndpoint)
	op := c.newOpFromNode(node)
	op.Type = mir.Concat
	op.Inputs = op.Inputs[:len(op.Inputs)-1]
	op.AddArg(mir.IntArg(mir.ArgAxis, axis))
	c.net.AddOp(op)
	return nil
}

// convertMean only handles the global-average-pooling form: a reduction over
// exactly the two spatial axes of a rank-4 input, which becomes an AVG
// Pooling with kernels covering the whole spatial extent.
func (c *converter) convertMean(node *tfgraph.Node) error {
	if len(node.Inputs) < 2 {
		return errors.Errorf("op %q (%s) must have 2 inputs, got %d", node.Name, node.Kind, len(node.Inputs))
	}
	axes, err := c.materializeInts(node.Inputs[1])
	if err != nil {
		return err
	}
	if !slices.Equal(axes, []int{1, 2}) {
		return errors.Wrapf(ErrUnsupportedPattern, "op %q reduces over axes %v, only the spatial axes [1 2] are supported",
			node.Name, axes)
	}
	inputShape, err := c.outputShape(node.Inputs[0])
	if err != nil {
		return err
	}
	if len(inputShape) != 4 {
		return errors.Wrapf(ErrUnsupportedPattern, "op %q reduces an input of rank %d, only rank-4 inputs are supported",
			node.Name, len(inputShape))
	}
	c.skipTensor(node.Inputs[1])
	op := c.newOpFromNode(node)
	op.Type = mir.Pooling
	op.Inputs = op.Inputs[:1]
	op.AddArg(
		mir.IntArg(mir.ArgPoolingType, int(mir.PoolingAvg)),
		mir.IntArg(mir.ArgPadding, int(mir.PaddingValid)),
		mir.IntsArg(mir.ArgStrides, 1, 1),
		mir.IntsArg(mir.ArgKernels, inputShape[1], inputShape[2]),
	)
	c.net.AddOp(op)
	return nil
}

// scopeOf returns the hierarchical prefix of a node name: everything up to
// the last '/', or the whole name when there is no separator.
func scopeOf(name string) string {
	if sep := strings.LastIndexByte(name, '/'); sep != -1 {
		return name[:sep]
	}
	return name
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
