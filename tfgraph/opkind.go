package tfgraph

// OpKind enumerates the TensorFlow op kinds that can appear in a frozen graph
// handled by this module. Kind strings in a GraphDef parse with OpKindString.
type OpKind int

//go:generate go tool enumer -type=OpKind -trimprefix=Kind opkind.go

const (
	KindInvalid OpKind = iota

	KindConv2D
	KindDepthwiseConv2dNative
	KindConv2DBackpropInput
	KindBiasAdd
	KindFusedBatchNorm
	KindAvgPool
	KindMaxPool
	KindMatMul

	KindAdd
	KindSub
	KindMul
	KindDiv
	KindRealDiv
	KindMin
	KindMax
	KindNeg
	KindAbs
	KindSquaredDifference
	KindPow

	KindRelu
	KindRelu6
	KindTanh
	KindSigmoid
	KindSoftmax

	KindReshape
	KindShape
	KindSqueeze
	KindTranspose
	KindIdentity
	KindResizeBilinear
	KindSpaceToBatchND
	KindBatchToSpaceND
	KindDepthToSpace
	KindSpaceToDepth
	KindPad
	KindConcatV2
	KindMean

	// Kinds below appear in frozen graphs and parse fine, but no conversion
	// rule exists for them.
	KindCast
	KindGather
	KindRsqrt
	KindStridedSlice

	KindPlaceholder
	KindConst
)
