// Package tfmir converts a frozen, shape-annotated TensorFlow graph
// (github.com/gomlx/tfmir/tfgraph) into a flat inference net
// (github.com/gomlx/tfmir/mir).
//
// The conversion is a single pure pass over the graph in node order:
//
// - A fixed dispatch table maps every supported op kind to its rule.
// - Each rule rewrites one source op into one runtime op, normalizing attributes into the argument conventions of the runtime.
// - Constants consumed by a rule (filter shapes, permutations, paddings, batch-norm parameters) are folded into op arguments or synthesized tensors, and dropped from the output.
// - The remaining constants are emitted as net tensors, and endpoint names at the graph boundary are normalized to the caller's input and output names.
//
// Graphs must arrive frozen (variables already turned into constants) with
// static shapes annotated on every output; the package never runs shape
// inference nor evaluates any op.
//
// Convert is the single entry point; any unsupported op kind or op pattern
// fails the whole conversion with an error wrapping ErrUnsupportedOp or
// ErrUnsupportedPattern.
package tfmir
