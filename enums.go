package tfmir

import (
	"github.com/gomlx/tfmir/mir"
	"github.com/gomlx/tfmir/tfgraph"
	"github.com/pkg/errors"
)

// TensorFlow attribute names read by the conversion rules.
const (
	attrPadding      = "padding"
	attrStrides      = "strides"
	attrDilations    = "dilations"
	attrKSize        = "ksize"
	attrEpsilon      = "epsilon"
	attrAlignCorners = "align_corners"
	attrBlockSize    = "block_size"
)

// eltwiseKinds maps the element-wise source op kinds to their function code.
// Add is also element-wise but dispatches through convertAdd, which falls
// back to AddN for more than two addends.
var eltwiseKinds = map[tfgraph.OpKind]mir.EltwiseKind{
	tfgraph.KindAdd:               mir.EltwiseSum,
	tfgraph.KindSub:               mir.EltwiseSub,
	tfgraph.KindMul:               mir.EltwiseProd,
	tfgraph.KindDiv:               mir.EltwiseDiv,
	tfgraph.KindRealDiv:           mir.EltwiseDiv,
	tfgraph.KindMin:               mir.EltwiseMin,
	tfgraph.KindMax:               mir.EltwiseMax,
	tfgraph.KindNeg:               mir.EltwiseNeg,
	tfgraph.KindAbs:               mir.EltwiseAbs,
	tfgraph.KindSquaredDifference: mir.EltwiseSqrDiff,
	tfgraph.KindPow:               mir.EltwisePow,
}

var poolingKinds = map[tfgraph.OpKind]mir.PoolingKind{
	tfgraph.KindAvgPool: mir.PoolingAvg,
	tfgraph.KindMaxPool: mir.PoolingMax,
}

var activationKinds = map[tfgraph.OpKind]mir.ActivationKind{
	tfgraph.KindRelu:    mir.ActivationRelu,
	tfgraph.KindRelu6:   mir.ActivationRelux,
	tfgraph.KindTanh:    mir.ActivationTanh,
	tfgraph.KindSigmoid: mir.ActivationSigmoid,
}

// attrError reports a required attribute that is set with the wrong type as
// malformed, and as missing otherwise.
func attrError(node *tfgraph.Node, attr, want string) error {
	if node.HasAttr(attr) {
		return errors.Errorf("op %q (%s): attribute %q must be %s", node.Name, node.Kind, attr, want)
	}
	return errors.Errorf("op %q (%s) is missing the %q attribute", node.Name, node.Kind, attr)
}

// paddingMode reads the required "padding" attribute and maps it to its code.
// An unknown mode string is an unsupported pattern.
func paddingMode(node *tfgraph.Node) (mir.PaddingMode, error) {
	s, found := node.AttrStr(attrPadding)
	if !found {
		return 0, attrError(node, attrPadding, "a string")
	}
	mode, err := mir.PaddingModeString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedPattern, "padding mode %q of op %q", s, node.Name)
	}
	return mode, nil
}

// spatialPair reads a required 4-element NHWC attribute (strides, ksize) and
// returns its two spatial elements.
func spatialPair(node *tfgraph.Node, attr string) ([]int, error) {
	values, found := node.AttrInts(attr)
	if !found {
		return nil, attrError(node, attr, "an int list")
	}
	if len(values) != 4 {
		return nil, errors.Errorf("op %q (%s): attribute %q must have 4 elements (NHWC), got %v",
			node.Name, node.Kind, attr, values)
	}
	return []int{int(values[1]), int(values[2])}, nil
}

// dilations reads the optional "dilations" attribute, defaulting to 1x1 when
// absent. A mis-typed value is an error, not a default.
func dilations(node *tfgraph.Node) ([]int, error) {
	if !node.HasAttr(attrDilations) {
		return []int{1, 1}, nil
	}
	return spatialPair(node, attrDilations)
}
