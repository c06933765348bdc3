package renderer

import "testing"

func TestUnwindRunsInReverseOrder(t *testing.T) {
	var u Unwind
	var order []int

	u.Add(func() { order = append(order, 1) })
	u.Add(func() { order = append(order, 2) })
	u.Add(func() { order = append(order, 3) })

	u.Unwind()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("Cleanups should run in reverse order, got %v", order)
	}
}

func TestUnwindRunsOnce(t *testing.T) {
	var u Unwind
	count := 0

	u.Add(func() { count++ })
	u.Unwind()
	u.Unwind()

	if count != 1 {
		t.Errorf("Cleanup should run exactly once, ran %d times", count)
	}
}

func TestUnwindDiscard(t *testing.T) {
	var u Unwind
	count := 0

	u.Add(func() { count++ })
	u.Discard()
	u.Unwind()

	if count != 0 {
		t.Error("Discarded cleanups should not run")
	}
}
