// Package mir defines the model intermediate representation produced by the
// conversion pass: a flat Net of ops and constant tensors, addressed by the
// endpoint names of the source graph.
//
// Ops carry their attributes as a list of named, typed Arguments. The
// argument names understood by the runtime are the Arg* constants; the
// integer codes stored under some of them are the enums in codes.go.
package mir

// Argument names understood by the runtime.
const (
	ArgPadding        = "padding"
	ArgStrides        = "strides"
	ArgDilations      = "dilations"
	ArgKernels        = "kernels"
	ArgPoolingType    = "pooling_type"
	ArgEltwiseType    = "type"
	ArgActivationType = "activation"
	ArgMaxLimit       = "max_limit"
	ArgDataFormat     = "data_format"
	ArgSize           = "size"
	ArgAlignCorners   = "align_corners"
	ArgBlockShape     = "space_batch_block_shape"
	ArgPaddings       = "paddings"
	ArgCrops          = "crops"
	ArgBlockSize      = "block_size"
	ArgConstantValue  = "constant_value"
	ArgAxis           = "axis"
	ArgShape          = "shape"
)

// ArgKind identifies which value field of an Argument is meaningful.
type ArgKind uint8

//go:generate go tool enumer -type=ArgKind -trimprefix=ArgKind mir.go

const (
	ArgKindInvalid ArgKind = iota
	ArgKindInt
	ArgKindFloat
	ArgKindStr
	ArgKindInts
)

// Argument is one named, typed attribute of an Op. Exactly one of the value
// fields is meaningful, identified by Kind.
type Argument struct {
	Name string
	Kind ArgKind

	I    int
	F    float32
	S    string
	Ints []int
}

// IntArg returns an integer argument.
func IntArg(name string, v int) Argument { return Argument{Name: name, Kind: ArgKindInt, I: v} }

// FloatArg returns a float argument.
func FloatArg(name string, v float32) Argument {
	return Argument{Name: name, Kind: ArgKindFloat, F: v}
}

// StrArg returns a string argument.
func StrArg(name, v string) Argument { return Argument{Name: name, Kind: ArgKindStr, S: v} }

// IntsArg returns an integer-list argument.
func IntsArg(name string, v ...int) Argument {
	return Argument{Name: name, Kind: ArgKindInts, Ints: v}
}

// Op is one runtime operator: its inputs and outputs are endpoint names, its
// output shapes parallel Outputs, and its attributes are Args.
type Op struct {
	Name         string
	Type         OpType
	Inputs       []string
	Outputs      []string
	OutputShapes [][]int
	Args         []Argument
}

// AddArg appends arguments to the op.
func (op *Op) AddArg(args ...Argument) {
	op.Args = append(op.Args, args...)
}

// Arg returns the argument with the given name, and whether it exists.
func (op *Op) Arg(name string) (Argument, bool) {
	for _, arg := range op.Args {
		if arg.Name == name {
			return arg, true
		}
	}
	return Argument{}, false
}

// ArgInt returns the value of an integer argument, and whether it exists with
// that kind.
func (op *Op) ArgInt(name string) (int, bool) {
	arg, ok := op.Arg(name)
	if !ok || arg.Kind != ArgKindInt {
		return 0, false
	}
	return arg.I, true
}

// ArgFloat returns the value of a float argument, and whether it exists with
// that kind.
func (op *Op) ArgFloat(name string) (float32, bool) {
	arg, ok := op.Arg(name)
	if !ok || arg.Kind != ArgKindFloat {
		return 0, false
	}
	return arg.F, true
}

// ArgStr returns the value of a string argument, and whether it exists with
// that kind.
func (op *Op) ArgStr(name string) (string, bool) {
	arg, ok := op.Arg(name)
	if !ok || arg.Kind != ArgKindStr {
		return "", false
	}
	return arg.S, true
}

// ArgInts returns the value of an integer-list argument, and whether it
// exists with that kind.
func (op *Op) ArgInts(name string) ([]int, bool) {
	arg, ok := op.Arg(name)
	if !ok || arg.Kind != ArgKindInts {
		return nil, false
	}
	return arg.Ints, true
}

// Tensor is one constant of the Net: a name (the endpoint it replaces in the
// source graph), dimensions, and a flat payload matching DataType.
type Tensor struct {
	Name     string
	Dims     []int
	DataType DataType

	Floats []float32
	Int32s []int32
}

// Net is the conversion result: ops in execution order plus the constant
// tensors they reference.
type Net struct {
	Ops     []*Op
	Tensors []*Tensor

	// FilterFormat records the layout convolution weights are stored in.
	FilterFormat FilterFormat
}

// AddOp appends an op to the net and returns it.
func (n *Net) AddOp(op *Op) *Op {
	n.Ops = append(n.Ops, op)
	return op
}

// AddTensor appends a constant tensor to the net and returns it.
func (n *Net) AddTensor(t *Tensor) *Tensor {
	n.Tensors = append(n.Tensors, t)
	return t
}

// TensorByName returns the tensor with the given name, or nil if there is none.
func (n *Net) TensorByName(name string) *Tensor {
	for _, t := range n.Tensors {
		if t.Name == name {
			return t
		}
	}
	return nil
}
