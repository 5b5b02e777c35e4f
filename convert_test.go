package tfmir_test

import (
	"testing"

	. "github.com/gomlx/tfmir"
	"github.com/gomlx/tfmir/mir"
	"github.com/gomlx/tfmir/tfgraph"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

// newNode builds a single-output node with the usual "<name>:0" endpoint.
func newNode(name string, kind tfgraph.OpKind, shape []int, inputs ...string) *tfgraph.Node {
	return &tfgraph.Node{
		Name:    name,
		Kind:    kind,
		Inputs:  inputs,
		Outputs: []tfgraph.Output{{Name: name + ":0", Shape: shape}},
	}
}

func buildGraph(t *testing.T, nodes ...*tfgraph.Node) *tfgraph.Graph {
	g := tfgraph.New()
	for _, node := range nodes {
		require.NoError(t, g.Add(node))
	}
	return g
}

func convert(t *testing.T, cfg *Config, nodes ...*tfgraph.Node) *mir.Net {
	net, err := Convert(buildGraph(t, nodes...), cfg)
	require.NoError(t, err)
	return net
}

func TestConvertNilAndEmpty(t *testing.T) {
	_, err := Convert(nil, nil)
	require.Error(t, err)

	net, err := Convert(tfgraph.New(), nil)
	require.NoError(t, err)
	require.Empty(t, net.Ops)
	require.Empty(t, net.Tensors)
	require.Equal(t, mir.HWIO, net.FilterFormat)
}

func TestUnsupportedOpKind(t *testing.T) {
	g := buildGraph(t,
		tfgraph.NewPlaceholder("input", []int{1, 8}),
		newNode("slice", tfgraph.KindStridedSlice, []int{1, 4}, "input:0"),
	)
	_, err := Convert(g, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedOp))
	require.Contains(t, err.Error(), "StridedSlice")
}

// Placeholder, Shape and Const are structural: they never become ops.
func TestStructuralNodesProduceNoOps(t *testing.T) {
	net := convert(t, nil,
		tfgraph.NewPlaceholder("input", []int{1, 2, 2, 3}),
		tfgraph.NewConst("w", tfgraph.NewFloatTensor([]float32{1, 2, 3}, 3)),
		newNode("shape", tfgraph.KindShape, []int{4}, "input:0"),
	)
	require.Empty(t, net.Ops)
	require.Len(t, net.Tensors, 1)
	require.Equal(t, "w:0", net.Tensors[0].Name)
}

func TestInputShapeOverrides(t *testing.T) {
	// The configured shape replaces the annotation on the node's default
	// output, whatever the node kind, under both key spellings.
	for _, key := range []string{"input", "input:0"} {
		cfg := &Config{InputShapes: map[string][]int{key: {1, 8, 8, 4}}}
		net := convert(t, cfg,
			tfgraph.NewPlaceholder("feed", []int{1, 2, 2, 4}),
			newNode("input", tfgraph.KindIdentity, []int{1, 2, 2, 4}, "feed:0"),
		)
		require.Len(t, net.Ops, 1)
		require.Equal(t, [][]int{{1, 8, 8, 4}}, net.Ops[0].OutputShapes, "key %q", key)
	}

	// Rules that read input shapes see the override too: Mean derives its
	// kernels from the overridden extent.
	cfg := &Config{InputShapes: map[string][]int{"input": {1, 5, 6, 16}}}
	net := convert(t, cfg,
		tfgraph.NewPlaceholder("input", []int{1, 7, 7, 16}),
		tfgraph.NewConst("axes", tfgraph.NewInt32Tensor([]int32{1, 2}, 2)),
		newNode("gap", tfgraph.KindMean, []int{1, 1, 1, 16}, "input:0", "axes:0"),
	)
	require.Len(t, net.Ops, 1)
	kernels, ok := net.Ops[0].ArgInts(mir.ArgKernels)
	require.True(t, ok)
	require.Equal(t, []int{5, 6}, kernels)
}

func TestBoundaryNameRewrite(t *testing.T) {
	cfg := &Config{
		InputShapes: map[string][]int{"input": {1, 4, 4, 2}},
		OutputNames: []string{"output"},
	}
	net := convert(t, cfg,
		tfgraph.NewPlaceholder("input", []int{1, 4, 4, 2}),
		newNode("mid", tfgraph.KindRelu, []int{1, 4, 4, 2}, "input:0"),
		newNode("output", tfgraph.KindTanh, []int{1, 4, 4, 2}, "mid:0"),
		newNode("tail", tfgraph.KindIdentity, []int{1, 4, 4, 2}, "output:0"),
	)
	require.Len(t, net.Ops, 3)

	relu, tanh, tail := net.Ops[0], net.Ops[1], net.Ops[2]
	require.Equal(t, []string{"input"}, relu.Inputs, "configured input loses its :0")
	require.Equal(t, []string{"mid:0"}, relu.Outputs, "interior endpoints keep their index")
	require.Equal(t, []string{"mid:0"}, tanh.Inputs)
	require.Equal(t, []string{"output"}, tanh.Outputs, "configured output loses its :0")
	require.Equal(t, []string{"output"}, tail.Inputs, "consumers follow the rename")
}

// Two conversions of the same graph must produce identical nets.
func TestDeterminism(t *testing.T) {
	build := func() *tfgraph.Graph {
		return buildGraph(t,
			tfgraph.NewPlaceholder("input", []int{1, 4, 4, 3}),
			tfgraph.NewConst("w", tfgraph.NewFloatTensor(make([]float32, 3*3*3*8), 3, 3, 3, 8)),
			newNode("conv", tfgraph.KindConv2D, []int{1, 4, 4, 8}, "input:0", "w:0").
				SetAttr("padding", tfgraph.StrAttr("SAME")).
				SetAttr("strides", tfgraph.IntsAttr(1, 1, 1, 1)),
			newNode("act", tfgraph.KindRelu, []int{1, 4, 4, 8}, "conv:0"),
		)
	}
	cfg := &Config{OutputNames: []string{"act"}}
	first, err := Convert(build(), cfg)
	require.NoError(t, err)
	second, err := Convert(build(), cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// endToEndNodes builds a small but complete classifier graph exercising most
// conversion rules at once.
func endToEndNodes() []*tfgraph.Node {
	convWeights := make([]float32, 3*3*3*8)
	for i := range convWeights {
		convWeights[i] = float32(i%7) * 0.5
	}
	fcWeights := make([]float32, 8*10)
	for i := range fcWeights {
		fcWeights[i] = float32(i%5) * 0.25
	}
	return []*tfgraph.Node{
		tfgraph.NewPlaceholder("input", []int{1, 16, 16, 3}),
		tfgraph.NewConst("conv/w", tfgraph.NewFloatTensor(convWeights, 3, 3, 3, 8)),
		newNode("conv", tfgraph.KindConv2D, []int{1, 8, 8, 8}, "input:0", "conv/w:0").
			SetAttr("padding", tfgraph.StrAttr("SAME")).
			SetAttr("strides", tfgraph.IntsAttr(1, 2, 2, 1)).
			SetAttr("dilations", tfgraph.IntsAttr(1, 1, 1, 1)),
		tfgraph.NewConst("bn/gamma", tfgraph.NewFloatTensor([]float32{1, 1, 1, 1, 2, 2, 2, 2}, 8)),
		tfgraph.NewConst("bn/beta", tfgraph.NewFloatTensor([]float32{0, 0, 0, 0, 1, 1, 1, 1}, 8)),
		tfgraph.NewConst("bn/mean", tfgraph.NewFloatTensor([]float32{0, 1, 0, 1, 0, 1, 0, 1}, 8)),
		tfgraph.NewConst("bn/var", tfgraph.NewFloatTensor([]float32{1, 1, 4, 4, 1, 1, 4, 4}, 8)),
		{
			Name:   "bn/FusedBatchNorm",
			Kind:   tfgraph.KindFusedBatchNorm,
			Inputs: []string{"conv:0", "bn/gamma:0", "bn/beta:0", "bn/mean:0", "bn/var:0"},
			Outputs: []tfgraph.Output{
				{Name: "bn/FusedBatchNorm:0", Shape: []int{1, 8, 8, 8}},
				{Name: "bn/FusedBatchNorm:1", Shape: []int{8}},
				{Name: "bn/FusedBatchNorm:2", Shape: []int{8}},
			},
			Attrs: map[string]tfgraph.AttrValue{"epsilon": tfgraph.FloatAttr(1e-3)},
		},
		newNode("act", tfgraph.KindRelu6, []int{1, 8, 8, 8}, "bn/FusedBatchNorm:0"),
		newNode("pool", tfgraph.KindMaxPool, []int{1, 4, 4, 8}, "act:0").
			SetAttr("padding", tfgraph.StrAttr("VALID")).
			SetAttr("strides", tfgraph.IntsAttr(1, 2, 2, 1)).
			SetAttr("ksize", tfgraph.IntsAttr(1, 2, 2, 1)),
		tfgraph.NewConst("gap/axes", tfgraph.NewInt32Tensor([]int32{1, 2}, 2)),
		newNode("gap", tfgraph.KindMean, []int{1, 1, 1, 8}, "pool:0", "gap/axes:0"),
		tfgraph.NewConst("flat/shape", tfgraph.NewInt32Tensor([]int32{-1, 8}, 2)),
		newNode("flat", tfgraph.KindReshape, []int{1, 8}, "gap:0", "flat/shape:0"),
		tfgraph.NewConst("fc/w", tfgraph.NewFloatTensor(fcWeights, 8, 10)),
		newNode("fc", tfgraph.KindMatMul, []int{1, 10}, "flat:0", "fc/w:0"),
		newNode("prob", tfgraph.KindSoftmax, []int{1, 10}, "fc:0"),
	}
}

func TestConvertEndToEnd(t *testing.T) {
	cfg := &Config{
		InputShapes: map[string][]int{"input": {1, 16, 16, 3}},
		OutputNames: []string{"prob"},
	}
	net := convert(t, cfg, endToEndNodes()...)

	var types []mir.OpType
	for _, op := range net.Ops {
		types = append(types, op.Type)
	}
	require.Equal(t, []mir.OpType{
		mir.Conv2D, mir.FoldedBatchNorm, mir.Activation, mir.Pooling,
		mir.Pooling, mir.Reshape, mir.MatMul, mir.Softmax,
	}, types)

	// Boundary names.
	require.Equal(t, "input", net.Ops[0].Inputs[0])
	require.Equal(t, []string{"prob"}, net.Ops[len(net.Ops)-1].Outputs)

	// Folded tensors first (in fold order), then surviving constants in
	// graph order. The batch-norm parameters, mean axes and reshape shape
	// never reach the net.
	var names []string
	for _, tensor := range net.Tensors {
		names = append(names, tensor.Name)
	}
	require.Equal(t, []string{"bn/scale:0", "bn/offset:0", "conv/w:0", "fc/w:0"}, names)

	rendered := net.String()
	require.Contains(t, rendered, "net: 8 op(s), 4 tensor(s), filter_format=HWIO")
}

func BenchmarkConvert(b *testing.B) {
	g := tfgraph.New()
	for _, node := range endToEndNodes() {
		must.M(g.Add(node))
	}
	cfg := &Config{
		InputShapes: map[string][]int{"input": {1, 16, 16, 3}},
		OutputNames: []string{"prob"},
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = must.M1(Convert(g, cfg))
	}
}
