package scene

import "github.com/torvik/glint/internal/engine/spatial"

// packInstances serializes transforms into the per-instance attribute
// layout: 16 model floats followed by 9 normal floats, in slice order.
func packInstances(instances []spatial.Transform) []float32 {
	const stride = 16 + 9
	out := make([]float32, 0, len(instances)*stride)
	for i := range instances {
		t := &instances[i]
		model := t.Model()
		normal := t.Normal()
		out = append(out, model[:]...)
		out = append(out, normal[:]...)
	}
	return out
}
