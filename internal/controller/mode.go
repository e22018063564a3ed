package controller

// Mode is either Creating or Editing. A submission while Editing updates the
// target record instead of creating a new one.
type Mode interface {
	isMode()
}

type Creating struct{}

type Editing struct {
	Id string
}

func (Creating) isMode() {}

func (Editing) isMode() {}

// EditTarget returns the id being edited, if any.
func EditTarget(m Mode) (string, bool) {
	if editing, ok := m.(Editing); ok {
		return editing.Id, true
	}
	return "", false
}
