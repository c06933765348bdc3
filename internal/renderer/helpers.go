package renderer

// Unwind collects cleanup callbacks and runs them in reverse order.
// Pass setup code adds GL teardown steps as it allocates, then defers
// Unwind so every exit path releases in LIFO order.
type Unwind struct {
	cleanups []func()
}

func (u *Unwind) Add(cleanup func()) {
	u.cleanups = append(u.cleanups, cleanup)
}

func (u *Unwind) Unwind() {
	for i := len(u.cleanups) - 1; i >= 0; i-- {
		u.cleanups[i]()
	}
	u.cleanups = u.cleanups[:0]
}

func (u *Unwind) Discard() {
	if len(u.cleanups) > 0 {
		u.cleanups = u.cleanups[:0]
	}
}
