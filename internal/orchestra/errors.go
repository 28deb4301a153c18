package orchestra

import (
	"errors"
	"fmt"
)

// ErrBusy rejects a command that arrived while the controller is driving a
// stage. Commands are rejected, never queued.
var ErrBusy = errors.New("a generation step is already in progress")

// ErrEmptyTopic rejects a start request with no usable topic.
var ErrEmptyTopic = errors.New("topic must not be empty")

// ErrNotReady rejects an assessment submission before the pipeline reached
// Ready.
var ErrNotReady = errors.New("no assessment is ready for submission")

// ErrNoContent rejects a tutor question before any module content exists.
var ErrNoContent = errors.New("no course content is available yet")

// ErrEmptyQuestion rejects a tutor request with no usable question.
var ErrEmptyQuestion = errors.New("question must not be empty")

// IncompleteAnswersError rejects a submission that does not cover every
// question. The pipeline stage is left untouched.
type IncompleteAnswersError struct {
	Answered int
	Total    int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("answered %d of %d questions", e.Answered, e.Total)
}
