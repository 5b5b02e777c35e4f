package mir

// Enum codes stored in op arguments. Like DataFormat and FilterFormat, the
// numeric values below are a wire contract shared with the runtime; they are
// append-only.

// PaddingMode selects how convolution-like ops pad their input. The VALID and
// SAME spellings used by TensorFlow parse with PaddingModeString.
type PaddingMode int

//go:generate go tool enumer -type=PaddingMode -trimprefix=Padding -transform=upper codes.go

const (
	PaddingValid PaddingMode = iota
	PaddingSame
	PaddingFull
)

// PoolingKind selects the reduction of a Pooling op.
type PoolingKind int

//go:generate go tool enumer -type=PoolingKind -trimprefix=Pooling -transform=upper codes.go

const (
	PoolingAvg PoolingKind = iota + 1
	PoolingMax
)

// EltwiseKind selects the function of an Eltwise op.
type EltwiseKind int

//go:generate go tool enumer -type=EltwiseKind -trimprefix=Eltwise codes.go

const (
	EltwiseSum EltwiseKind = iota
	EltwiseSub
	EltwiseProd
	EltwiseDiv
	EltwiseMin
	EltwiseMax
	EltwiseNeg
	EltwiseAbs
	EltwiseSqrDiff
	EltwisePow
)

// ActivationKind selects the function of an Activation op. Unlike the other
// codes it is stored by name, as the string produced by String.
type ActivationKind int

//go:generate go tool enumer -type=ActivationKind -trimprefix=Activation -transform=upper codes.go

const (
	ActivationRelu ActivationKind = iota + 1
	ActivationRelux
	ActivationTanh
	ActivationSigmoid
)
