package orchestra

import "time"

// LogEntry is one inter-agent message. Entries are immutable once appended;
// insertion order is the causal order of the pipeline.
type LogEntry struct {
	ID         int64
	Timestamp  time.Time
	Source     AgentRole
	Target     AgentRole
	Message    string
	Intent     string  // optional, empty when not reported
	Confidence float64 // optional, zero when not reported
}

// InteractionLog is the append-only record of inter-agent messages. Like the
// registry it is owned by the Controller and mutated only under its lock.
type InteractionLog struct {
	entries []LogEntry
	nextID  int64
}

// NewInteractionLog creates an empty log.
func NewInteractionLog() *InteractionLog {
	return &InteractionLog{nextID: 1}
}

// Append adds an entry with the next monotonic id and the current time.
func (l *InteractionLog) Append(source, target AgentRole, message string) LogEntry {
	return l.AppendDetailed(source, target, message, "", 0)
}

// AppendDetailed adds an entry carrying an intent label and confidence.
func (l *InteractionLog) AppendDetailed(source, target AgentRole, message, intent string, confidence float64) LogEntry {
	entry := LogEntry{
		ID:         l.nextID,
		Timestamp:  time.Now(),
		Source:     source,
		Target:     target,
		Message:    message,
		Intent:     intent,
		Confidence: confidence,
	}
	l.nextID++
	l.entries = append(l.entries, entry)
	return entry
}

// Clear empties the log. Ids keep increasing across clears so an entry id
// never repeats within a process.
func (l *InteractionLog) Clear() {
	l.entries = nil
}

// Entries returns a copy of the full ordered sequence.
func (l *InteractionLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *InteractionLog) Len() int {
	return len(l.entries)
}
