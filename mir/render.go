package mir

import (
	"fmt"
	"io"
	"strings"
)

// Text rendering of a Net, for logs, golden files and debugging. The format
// is one line per op ("outputs = Type(inputs) {args} : shapes") followed by
// one line per tensor; it is not meant to be parsed back.

// Write writes a string representation of the argument to the given writer.
func (arg Argument) Write(writer io.Writer) error {
	var err error
	switch arg.Kind {
	case ArgKindInt:
		_, err = fmt.Fprintf(writer, "%s=%d", arg.Name, arg.I)
	case ArgKindFloat:
		_, err = fmt.Fprintf(writer, "%s=%g", arg.Name, arg.F)
	case ArgKindStr:
		_, err = fmt.Fprintf(writer, "%s=%q", arg.Name, arg.S)
	case ArgKindInts:
		_, err = fmt.Fprintf(writer, "%s=%v", arg.Name, arg.Ints)
	default:
		_, err = fmt.Fprintf(writer, "%s=?", arg.Name)
	}
	return err
}

// Write writes a one-line string representation of the op to the given writer.
func (op *Op) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	if len(op.Outputs) > 0 {
		w("%s = ", strings.Join(op.Outputs, ", "))
	}
	w("%s(%s)", op.Type, strings.Join(op.Inputs, ", "))

	if len(op.Args) > 0 {
		w(" {")
		for i, arg := range op.Args {
			if i > 0 {
				w(", ")
			}
			if err == nil {
				err = arg.Write(writer)
			}
		}
		w("}")
	}

	if len(op.OutputShapes) > 0 {
		w(" :")
		for _, shape := range op.OutputShapes {
			w(" %v", shape)
		}
	}
	return err
}

// Write writes a one-line string representation of the tensor to the given
// writer. The payload is summarized by its length, not dumped.
func (t *Tensor) Write(writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "%s : %s%v (%d values)", t.Name, t.DataType, t.Dims, len(t.Floats)+len(t.Int32s))
	return err
}

// Write writes a multi-line string representation of the net to the given
// writer.
func (n *Net) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("net: %d op(s), %d tensor(s), filter_format=%s\n", len(n.Ops), len(n.Tensors), n.FilterFormat)
	for _, op := range n.Ops {
		w("  ")
		if err == nil {
			err = op.Write(writer)
		}
		w("\n")
	}
	for _, t := range n.Tensors {
		w("  ")
		if err == nil {
			err = t.Write(writer)
		}
		w("\n")
	}
	return err
}

// String returns the op rendered as by Write.
func (op *Op) String() string {
	var sb strings.Builder
	_ = op.Write(&sb)
	return sb.String()
}

// String returns the tensor rendered as by Write.
func (t *Tensor) String() string {
	var sb strings.Builder
	_ = t.Write(&sb)
	return sb.String()
}

// String returns the net rendered as by Write.
func (n *Net) String() string {
	var sb strings.Builder
	_ = n.Write(&sb)
	return sb.String()
}
