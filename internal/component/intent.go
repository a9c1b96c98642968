package component

// Intent is what the input layer wants the observer to do on the next tick.
// Turn is -1 (left), 0, or +1 (right); Walk is -1 (back), 0, or +1 (forward).
type Intent struct {
	Turn int
	Walk int
}

// Clamp forces both fields into {-1, 0, +1}.
func (i Intent) Clamp() Intent {
	return Intent{Turn: sign(i.Turn), Walk: sign(i.Walk)}
}

// Idle reports whether the intent asks for nothing.
func (i Intent) Idle() bool { return i.Turn == 0 && i.Walk == 0 }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
