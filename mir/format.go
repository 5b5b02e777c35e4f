package mir

// DataFormat is the activation-tensor layout recorded on every op.
// The numeric values are part of the serialized form and must not change.
type DataFormat int

//go:generate go tool enumer -type=DataFormat format.go

const (
	NHWC DataFormat = iota
	NCHW
)

// FilterFormat is the weight-tensor layout recorded on the Net.
// The numeric values are part of the serialized form and must not change.
type FilterFormat int

//go:generate go tool enumer -type=FilterFormat format.go

const (
	HWIO FilterFormat = iota
	OIHW
	HWOI
)
