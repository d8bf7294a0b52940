package picol

// frame is one variable-binding environment in the call chain. Variable
// lookup never walks the parent link: the language has no closures and no
// global-access operator, so a procedure body sees only its own bindings.
// The parent pointer exists solely so popping restores the caller's frame.
type frame struct {
	vars   map[string]string
	parent *frame
}

func newFrame(parent *frame) *frame {
	return &frame{vars: make(map[string]string), parent: parent}
}

func (f *frame) get(name string) (string, bool) {
	val, ok := f.vars[name]
	return val, ok
}

func (f *frame) set(name, value string) {
	f.vars[name] = value
}

func (i *Interp) pushFrame() {
	i.frame = newFrame(i.frame)
}

// popFrame discards the current frame and its variables. Callers pair it
// with a pushFrame, so the root frame is never popped.
func (i *Interp) popFrame() {
	clear(i.frame.vars)
	i.frame = i.frame.parent
}
