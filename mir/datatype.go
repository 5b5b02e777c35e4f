package mir

// DataType is the element type of a Net tensor. The runtime consumes float32
// weights and int32 shape-like data, so those are the only two values.
type DataType int

//go:generate go tool enumer -type=DataType datatype.go

const (
	InvalidDataType DataType = iota
	Float32
	Int32
)
