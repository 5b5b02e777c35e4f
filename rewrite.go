package tfmir

import "strings"

// Boundary-name normalization. Callers address graph inputs and outputs by
// node name; inside the net everything is an endpoint name. After all ops are
// converted, default endpoints ("name:0") of configured boundary nodes are
// shortened back to the bare name. Non-default endpoints ("name:1", ...) keep
// their index so multi-output boundary nodes stay unambiguous.

// rewriteBoundaryNames shortens "name:0" to "name" on op inputs for both
// configured inputs and outputs, and on op outputs for configured outputs.
func (c *converter) rewriteBoundaryNames() {
	for _, op := range c.net.Ops {
		for i, input := range op.Inputs {
			name, found := strings.CutSuffix(input, ":0")
			if !found {
				continue
			}
			if c.isInputName(name) || c.outputNames[name] {
				op.Inputs[i] = name
			}
		}
		for i, output := range op.Outputs {
			name, found := strings.CutSuffix(output, ":0")
			if !found {
				continue
			}
			if c.outputNames[name] {
				op.Outputs[i] = name
			}
		}
	}
}

func (c *converter) isInputName(name string) bool {
	_, found := c.cfg.InputShapes[name]
	return found
}
