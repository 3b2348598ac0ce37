package construction

import "github.com/andrescamacho/nationsim-go/internal/domain/shared"

// Queue is the ordered construction queue. Only the front task receives build points.
type Queue struct {
	tasks []*Task
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Len() int { return len(q.tasks) }

// Enqueue appends count independent tasks for the same building and province
func (q *Queue) Enqueue(buildingType shared.BuildingType, provinceIndex, count int) {
	for i := 0; i < count; i++ {
		q.tasks = append(q.tasks, NewTask(buildingType, provinceIndex))
	}
}

// Queued counts pending tasks of buildingType targeting provinceIndex
func (q *Queue) Queued(buildingType shared.BuildingType, provinceIndex int) int {
	n := 0
	for _, t := range q.tasks {
		if t.buildingType == buildingType && t.provinceIndex == provinceIndex {
			n++
		}
	}
	return n
}

// Front returns the task currently under construction, or nil when empty
func (q *Queue) Front() *Task {
	if len(q.tasks) == 0 {
		return nil
	}
	return q.tasks[0]
}

// Advance spends dailyBP on the front task. When that task completes it is
// removed and returned; otherwise Advance returns nil.
func (q *Queue) Advance(dailyBP float64) *Task {
	front := q.Front()
	if front == nil {
		return nil
	}
	if !front.Progress(dailyBP) {
		return nil
	}
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return front
}

// Snapshot returns value copies of the queued tasks in order
func (q *Queue) Snapshot() []Task {
	out := make([]Task, len(q.tasks))
	for i, t := range q.tasks {
		out[i] = *t
	}
	return out
}
