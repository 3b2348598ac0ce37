package focus

// NoActiveFocus is the active index of an idle tree
const NoActiveFocus = -1

// Tree holds the focus catalog. At most one focus is active at a time and a
// completed focus can never be started again.
type Tree struct {
	focuses      []*Focus
	activeIndex  int
	progressDays int
}

// NewTree creates an idle tree over focuses. A nil catalog uses DefaultCatalog.
func NewTree(focuses []*Focus) *Tree {
	if focuses == nil {
		focuses = DefaultCatalog()
	}
	return &Tree{focuses: focuses, activeIndex: NoActiveFocus}
}

func (t *Tree) Len() int          { return len(t.focuses) }
func (t *Tree) ActiveIndex() int  { return t.activeIndex }
func (t *Tree) ProgressDays() int { return t.progressDays }
func (t *Tree) IsActive() bool    { return t.activeIndex != NoActiveFocus }

// Focus returns the focus at index, or nil when out of range
func (t *Tree) Focus(index int) *Focus {
	if index < 0 || index >= len(t.focuses) {
		return nil
	}
	return t.focuses[index]
}

// IsCompleted is false for any out-of-range index
func (t *Tree) IsCompleted(index int) bool {
	f := t.Focus(index)
	return f != nil && f.completed
}

// ActiveFocusName returns "None" while idle
func (t *Tree) ActiveFocusName() string {
	if !t.IsActive() {
		return "None"
	}
	return t.focuses[t.activeIndex].name
}

// RemainingDays of the active focus, 0 while idle
func (t *Tree) RemainingDays() int {
	if !t.IsActive() {
		return 0
	}
	return t.focuses[t.activeIndex].daysRequired - t.progressDays
}

func (t *Tree) Status(index int) Status {
	switch {
	case t.IsCompleted(index):
		return StatusCompleted
	case t.IsActive() && index == t.activeIndex:
		return StatusActive
	}
	return StatusAvailable
}

// Start activates the focus at index, or explains why it cannot be started.
// A rejected start leaves the tree untouched.
func (t *Tree) Start(index int) error {
	if t.IsActive() {
		return &ErrFocusAlreadyActive{ActiveName: t.ActiveFocusName(), DaysLeft: t.RemainingDays()}
	}
	f := t.Focus(index)
	if f == nil {
		return &ErrFocusIndexOutOfRange{Index: index, Count: len(t.focuses)}
	}
	if f.completed {
		return &ErrFocusCompleted{Name: f.name}
	}

	t.activeIndex = index
	t.progressDays = 0
	return nil
}

// StartFocus is Start reduced to a success flag
func (t *Tree) StartFocus(index int) bool {
	return t.Start(index) == nil
}

// Tick advances the active focus by one day. It returns the focus's effect and
// true exactly once, on the day the focus completes; otherwise (EffectNone, false).
func (t *Tree) Tick() (Effect, bool) {
	if !t.IsActive() {
		return EffectNone, false
	}

	t.progressDays++
	f := t.focuses[t.activeIndex]
	if t.progressDays < f.daysRequired {
		return EffectNone, false
	}

	f.completed = true
	t.activeIndex = NoActiveFocus
	t.progressDays = 0
	return f.effect, true
}

// Clone returns a deep copy that shares no state with t
func (t *Tree) Clone() *Tree {
	focuses := make([]*Focus, len(t.focuses))
	for i, f := range t.focuses {
		c := *f
		focuses[i] = &c
	}
	return &Tree{focuses: focuses, activeIndex: t.activeIndex, progressDays: t.progressDays}
}
