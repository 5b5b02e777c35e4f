package tfgraph

// DType is the element type of a graph tensor.
//
// Conversion only materializes Float and Int32 payloads; the remaining values
// exist so loaders can represent (and conversion can report) graphs that use
// types outside that set.
type DType int

//go:generate go tool enumer -type=DType -trimprefix=DType dtype.go

const (
	DTypeInvalid DType = iota
	DTypeFloat
	DTypeDouble
	DTypeInt32
	DTypeInt64
	DTypeBool
	DTypeHalf
)
