package mir

// OpType is an enum of the runtime operators a Net can hold.
type OpType int

//go:generate go tool enumer -type=OpType optype.go

const (
	Invalid OpType = iota

	Conv2D
	DepthwiseConv2d
	Deconv2D
	FoldedBatchNorm
	Pooling
	MatMul

	Eltwise
	AddN
	BiasAdd
	Activation
	Softmax

	Identity
	Reshape
	ResizeBilinear
	SpaceToBatchND
	BatchToSpaceND
	DepthToSpace
	SpaceToDepth
	Pad
	Concat
)
