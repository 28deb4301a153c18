package journey

import (
	"time"

	"github.com/priyankc/mentora/internal/store"
)

// journeyDoneMsg is sent when the generation chain settles in Ready or
// Failed.
type journeyDoneMsg struct {
	Err error
}

// refreshTickMsg drives snapshot polling while the pipeline is busy.
type refreshTickMsg time.Time

// gradeDoneMsg is sent when assessment grading finishes.
type gradeDoneMsg struct {
	Err error
}

// tutorDoneMsg is sent when the tutor reply arrives.
type tutorDoneMsg struct {
	Reply string
	Err   error
}

// statsMsg carries journey statistics for the progress tab.
type statsMsg struct {
	Stats store.JourneyStats
	Err   error
}
