package focus

import "fmt"

// ErrFocusIndexOutOfRange indicates a start request for a focus that does not exist
type ErrFocusIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrFocusIndexOutOfRange) Error() string {
	return fmt.Sprintf("focus index %d out of range (catalog has %d focuses)", e.Index, e.Count)
}

// ErrFocusAlreadyActive indicates the tree is busy with another focus
type ErrFocusAlreadyActive struct {
	ActiveName string
	DaysLeft   int
}

func (e *ErrFocusAlreadyActive) Error() string {
	return fmt.Sprintf("focus %q is already in progress (%d days left)", e.ActiveName, e.DaysLeft)
}

// ErrFocusCompleted indicates the requested focus was finished earlier
type ErrFocusCompleted struct {
	Name string
}

func (e *ErrFocusCompleted) Error() string {
	return fmt.Sprintf("focus %q is already completed", e.Name)
}
