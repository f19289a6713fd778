package components

// ScriptedRand replays fixed values for deterministic tests
// Once a queue is exhausted, Float64 returns FloatDefault and Intn returns IntDefault clamped to n
type ScriptedRand struct {
	Floats       []float64
	Ints         []int
	FloatDefault float64
	IntDefault   int
}

// NewScriptedRand creates a source whose exhausted Float64 never triggers a probability check
func NewScriptedRand() *ScriptedRand {
	return &ScriptedRand{FloatDefault: 0.999}
}

// Float64 implements Rand
func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return r.FloatDefault
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

// Intn implements Rand
func (r *ScriptedRand) Intn(n int) int {
	v := r.IntDefault
	if len(r.Ints) > 0 {
		v = r.Ints[0]
		r.Ints = r.Ints[1:]
	}
	if n <= 0 {
		return 0
	}
	return v % n
}
