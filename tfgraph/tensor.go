package tfgraph

import (
	"github.com/gomlx/exceptions"
)

// Tensor holds the pre-resolved value of a Const node: its dimensions,
// element type and flat payload in row-major order.
//
// Exactly one payload slice is set, matching DType. A scalar has nil Dims and
// a payload of length 1.
type Tensor struct {
	Dims  []int
	DType DType

	Floats []float32
	Int32s []int32
}

// NewFloatTensor creates a float32 tensor from the flat data and its dimensions.
//
// If dimensions is omitted, it is assumed to represent a scalar, and flat must
// have length 1.
func NewFloatTensor(flat []float32, dimensions ...int) *Tensor {
	checkTensorSize(DTypeFloat, len(flat), dimensions)
	return &Tensor{Dims: dimensions, DType: DTypeFloat, Floats: flat}
}

// NewInt32Tensor creates an int32 tensor from the flat data and its dimensions.
//
// If dimensions is omitted, it is assumed to represent a scalar, and flat must
// have length 1.
func NewInt32Tensor(flat []int32, dimensions ...int) *Tensor {
	checkTensorSize(DTypeInt32, len(flat), dimensions)
	return &Tensor{Dims: dimensions, DType: DTypeInt32, Int32s: flat}
}

func checkTensorSize(dtype DType, flatLen int, dimensions []int) {
	size := 1
	for _, dim := range dimensions {
		size *= dim
	}
	if size != flatLen {
		exceptions.Panicf("tfgraph.Tensor of type %s got a flat slice of length %d, but dimensions %v hold %d elements",
			dtype, flatLen, dimensions, size)
	}
}

// Rank returns the number of dimensions; 0 for a scalar.
func (t *Tensor) Rank() int { return len(t.Dims) }

// Size returns the number of elements: the product of Dims, 1 for a scalar.
func (t *Tensor) Size() int {
	size := 1
	for _, dim := range t.Dims {
		size *= dim
	}
	return size
}

// Ints returns the payload of an Int32 tensor widened to []int.
// It panics if the tensor is not Int32.
func (t *Tensor) Ints() []int {
	if t.DType != DTypeInt32 {
		exceptions.Panicf("tfgraph.Tensor.Ints called on a %s tensor", t.DType)
	}
	ints := make([]int, len(t.Int32s))
	for i, v := range t.Int32s {
		ints[i] = int(v)
	}
	return ints
}
