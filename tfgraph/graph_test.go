package tfgraph_test

import (
	"testing"

	. "github.com/gomlx/tfmir/tfgraph"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	for _, test := range []struct {
		endpoint string
		node     string
		index    int
	}{
		{"input", "input", 0},
		{"input:0", "input", 0},
		{"tower/conv:2", "tower/conv", 2},
		{"bn/FusedBatchNorm:1", "bn/FusedBatchNorm", 1},
	} {
		node, index, err := ParseEndpoint(test.endpoint)
		require.NoError(t, err, "endpoint %q", test.endpoint)
		require.Equal(t, test.node, node)
		require.Equal(t, test.index, index)
	}

	for _, endpoint := range []string{"", ":0", "node:", "node:x", "node:-1"} {
		_, _, err := ParseEndpoint(endpoint)
		require.Error(t, err, "endpoint %q should not parse", endpoint)
	}
}

func TestEndpoint(t *testing.T) {
	require.Equal(t, "conv:0", Endpoint("conv", 0))
	require.Equal(t, "tower/conv:2", Endpoint("tower/conv", 2))
}

func TestGraphAdd(t *testing.T) {
	g := New()
	require.NoError(t, g.Add(NewPlaceholder("input", []int{1, 4, 4, 3})))
	require.Equal(t, 1, g.NumNodes())

	require.Error(t, g.Add(NewPlaceholder("input", nil)), "duplicate names must be rejected")
	require.Error(t, g.Add(&Node{Name: "", Kind: KindIdentity}), "empty names must be rejected")
	require.Error(t, g.Add(&Node{Name: "x", Kind: KindInvalid}), "invalid kinds must be rejected")
	require.Error(t, g.Add(&Node{Name: "y", Kind: OpKind(999)}), "unknown kinds must be rejected")
	require.Equal(t, 1, g.NumNodes())

	require.Nil(t, g.NodeByName("missing"))
	require.NotNil(t, g.NodeByName("input"))
}

func TestProducer(t *testing.T) {
	g := New()
	require.NoError(t, g.Add(NewPlaceholder("input", []int{1, 4, 4, 3})))
	split := &Node{
		Name:   "split",
		Kind:   KindIdentity,
		Inputs: []string{"input:0"},
		Outputs: []Output{
			{Name: "split:0", Shape: []int{1, 4, 4, 1}},
			{Name: "split:1", Shape: []int{1, 4, 4, 2}},
		},
	}
	require.NoError(t, g.Add(split))

	node, index, err := g.Producer("split:1")
	require.NoError(t, err)
	require.Same(t, split, node)
	require.Equal(t, 1, index)

	node, index, err = g.Producer("input")
	require.NoError(t, err)
	require.Equal(t, "input", node.Name)
	require.Equal(t, 0, index)

	shape, err := g.OutputShape("split:1")
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 4, 2}, shape)

	_, _, err = g.Producer("missing:0")
	require.Error(t, err)
	_, _, err = g.Producer("split:2")
	require.Error(t, err)
	_, err = g.OutputShape("bad::endpoint:")
	require.Error(t, err)
}

func TestNewConst(t *testing.T) {
	tensor := NewInt32Tensor([]int32{1, 2, 3, 4}, 2, 2)
	node := NewConst("weights", tensor)
	require.Equal(t, KindConst, node.Kind)
	require.Equal(t, []Output{{Name: "weights:0", Shape: []int{2, 2}}}, node.Outputs)
	require.Same(t, tensor, node.Value)
}

func TestTensors(t *testing.T) {
	scalar := NewInt32Tensor([]int32{3})
	require.Equal(t, 0, scalar.Rank())
	require.Equal(t, 1, scalar.Size())
	require.Equal(t, []int{3}, scalar.Ints())

	shaped := NewFloatTensor([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.Equal(t, 2, shaped.Rank())
	require.Equal(t, 6, shaped.Size())
	require.Equal(t, DTypeFloat, shaped.DType)

	require.Panics(t, func() { NewFloatTensor([]float32{1, 2}, 3) })
	require.Panics(t, func() { NewInt32Tensor(nil, 2, 2) })
	require.Panics(t, func() { shaped.Ints() }, "Ints on a float tensor must panic")
}

func TestAttrs(t *testing.T) {
	node := NewPlaceholder("x", nil).
		SetAttr("padding", StrAttr("SAME")).
		SetAttr("strides", IntsAttr(1, 2, 2, 1)).
		SetAttr("epsilon", FloatAttr(1e-3)).
		SetAttr("align_corners", BoolAttr(true)).
		SetAttr("block_size", IntAttr(2))

	s, ok := node.AttrStr("padding")
	require.True(t, ok)
	require.Equal(t, "SAME", s)

	ints, ok := node.AttrInts("strides")
	require.True(t, ok)
	require.Equal(t, []int64{1, 2, 2, 1}, ints)

	f, ok := node.AttrFloat("epsilon")
	require.True(t, ok)
	require.Equal(t, float32(1e-3), f)

	b, ok := node.AttrBool("align_corners")
	require.True(t, ok)
	require.True(t, b)

	i, ok := node.AttrInt("block_size")
	require.True(t, ok)
	require.Equal(t, int64(2), i)

	_, ok = node.AttrStr("missing")
	require.False(t, ok)
	_, ok = node.AttrInt("padding")
	require.False(t, ok, "type mismatches must not be reported as present")
}

func TestOpKindParsing(t *testing.T) {
	// Kind strings must match the names TensorFlow uses in GraphDefs.
	kind, err := OpKindString("DepthwiseConv2dNative")
	require.NoError(t, err)
	require.Equal(t, KindDepthwiseConv2dNative, kind)
	require.Equal(t, "DepthwiseConv2dNative", kind.String())

	kind, err = OpKindString("ConcatV2")
	require.NoError(t, err)
	require.Equal(t, KindConcatV2, kind)

	_, err = OpKindString("NotAnOp")
	require.Error(t, err)
}
