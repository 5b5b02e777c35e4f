package tfgraph

type attrKind uint8

const (
	attrInvalid attrKind = iota
	attrStr
	attrInt
	attrFloat
	attrBool
	attrInts
)

// AttrValue is one typed attribute of a Node: a string, an int, a float,
// a bool or an int list. Build values with StrAttr, IntAttr, FloatAttr,
// BoolAttr and IntsAttr; read them back with the Node.Attr* accessors.
type AttrValue struct {
	kind attrKind
	s    string
	i    int64
	f    float32
	b    bool
	ints []int64
}

// StrAttr returns a string attribute value.
func StrAttr(v string) AttrValue { return AttrValue{kind: attrStr, s: v} }

// IntAttr returns an integer attribute value.
func IntAttr(v int64) AttrValue { return AttrValue{kind: attrInt, i: v} }

// FloatAttr returns a float attribute value.
func FloatAttr(v float32) AttrValue { return AttrValue{kind: attrFloat, f: v} }

// BoolAttr returns a boolean attribute value.
func BoolAttr(v bool) AttrValue { return AttrValue{kind: attrBool, b: v} }

// IntsAttr returns an integer-list attribute value.
func IntsAttr(v ...int64) AttrValue { return AttrValue{kind: attrInts, ints: v} }

// HasAttr reports whether an attribute with the given name is set, whatever
// its type.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// AttrStr returns the string attribute with the given name, and whether it is
// set with that type.
func (n *Node) AttrStr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.kind != attrStr {
		return "", false
	}
	return v.s, true
}

// AttrInt returns the integer attribute with the given name, and whether it
// is set with that type.
func (n *Node) AttrInt(name string) (int64, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.kind != attrInt {
		return 0, false
	}
	return v.i, true
}

// AttrFloat returns the float attribute with the given name, and whether it
// is set with that type.
func (n *Node) AttrFloat(name string) (float32, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.kind != attrFloat {
		return 0, false
	}
	return v.f, true
}

// AttrBool returns the boolean attribute with the given name, and whether it
// is set with that type.
func (n *Node) AttrBool(name string) (bool, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.kind != attrBool {
		return false, false
	}
	return v.b, true
}

// AttrInts returns the integer-list attribute with the given name, and
// whether it is set with that type.
func (n *Node) AttrInts(name string) ([]int64, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.kind != attrInts {
		return nil, false
	}
	return v.ints, true
}
