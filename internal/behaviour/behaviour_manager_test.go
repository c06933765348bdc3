package behaviour

import "testing"

type countingBehaviour struct {
	starts  int
	updates int
	fixed   int
}

func (c *countingBehaviour) Start()       { c.starts++ }
func (c *countingBehaviour) Update()      { c.updates++ }
func (c *countingBehaviour) UpdateFixed() { c.fixed++ }

func TestManagerStartsOnce(t *testing.T) {
	m := NewManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.UpdateAll()
	m.UpdateAll()
	m.UpdateAllFixed()

	if b.starts != 1 {
		t.Errorf("Start should run exactly once, ran %d times", b.starts)
	}
	if b.updates != 2 {
		t.Errorf("Expected 2 updates, got %d", b.updates)
	}
	if b.fixed != 1 {
		t.Errorf("Expected 1 fixed update, got %d", b.fixed)
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	a := &countingBehaviour{}
	b := &countingBehaviour{}
	m.Add(a)
	m.Add(b)

	m.Remove(a)
	m.UpdateAll()

	if a.updates != 0 {
		t.Error("Removed behaviour should not update")
	}
	if b.updates != 1 {
		t.Error("Remaining behaviour should still update")
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.Clear()
	m.UpdateAll()

	if b.updates != 0 {
		t.Error("Cleared manager should not update anything")
	}
}
