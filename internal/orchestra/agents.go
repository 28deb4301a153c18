package orchestra

// AgentRole is a named logical role in the pipeline. Roles are a fixed
// enumeration so every one is statically accounted for; they are not
// separate processes or threads.
type AgentRole int

const (
	RoleOrchestrator AgentRole = iota
	RoleCurriculum
	RoleContent
	RoleAssessment
	RoleFeedback
	RoleTutoring
	RoleProgress
	RoleSystem
	RoleUser

	numRoles
)

// roleInfo pairs the display name with the role description shown in the
// agent panel.
var roleInfo = [numRoles]struct {
	name        string
	description string
}{
	RoleOrchestrator: {"Central Orchestrator", "Coordinates agents to achieve learning goals."},
	RoleCurriculum:   {"Curriculum Agent", "Designs and structures the learning path."},
	RoleContent:      {"Content Agent", "Generates and sources learning materials."},
	RoleAssessment:   {"Assessment Agent", "Creates quizzes to evaluate understanding."},
	RoleFeedback:     {"Feedback Agent", "Provides constructive feedback on performance."},
	RoleTutoring:     {"Tutoring Agent", "Offers on-demand help and clarifies concepts."},
	RoleProgress:     {"Progress Tracking Agent", "Monitors and visualizes learning progress."},
	RoleSystem:       {"System", "Reports failures and internal notices."},
	RoleUser:         {"User", "The learner driving the journey."},
}

func (r AgentRole) String() string {
	if r < 0 || r >= numRoles {
		return "Unknown"
	}
	return roleInfo[r].name
}

// Description returns the role's one-line description.
func (r AgentRole) Description() string {
	if r < 0 || r >= numRoles {
		return ""
	}
	return roleInfo[r].description
}

// Roles returns every role in declaration order.
func Roles() []AgentRole {
	out := make([]AgentRole, numRoles)
	for i := range out {
		out[i] = AgentRole(i)
	}
	return out
}

// AgentStatus is the current textual status of one role.
type AgentStatus struct {
	Role       AgentRole
	StatusText string
	IsCurrent  bool
}

// AgentRegistry holds the current status per role, exhaustively indexed by
// the role enumeration. It keeps no history; that lives in the interaction
// log. The registry is owned by the Controller and mutated only under its
// lock.
type AgentRegistry struct {
	statuses [numRoles]AgentStatus
}

// NewAgentRegistry creates a registry with every role idle.
func NewAgentRegistry() *AgentRegistry {
	r := &AgentRegistry{}
	r.Reset()
	return r
}

// Reset returns every role to an idle status with no current agent.
func (r *AgentRegistry) Reset() {
	for i := range r.statuses {
		r.statuses[i] = AgentStatus{Role: AgentRole(i)}
	}
}

// SetStatus overwrites the role's status text. When makeCurrent is true the
// role becomes the single current agent.
func (r *AgentRegistry) SetStatus(role AgentRole, text string, makeCurrent bool) {
	if role < 0 || role >= numRoles {
		return
	}
	if makeCurrent {
		for i := range r.statuses {
			r.statuses[i].IsCurrent = false
		}
	}
	r.statuses[role].StatusText = text
	if makeCurrent {
		r.statuses[role].IsCurrent = true
	}
}

// Status returns the current status of one role.
func (r *AgentRegistry) Status(role AgentRole) AgentStatus {
	if role < 0 || role >= numRoles {
		return AgentStatus{}
	}
	return r.statuses[role]
}

// Current returns the role marked current, or RoleOrchestrator when none is.
func (r *AgentRegistry) Current() AgentRole {
	for i := range r.statuses {
		if r.statuses[i].IsCurrent {
			return AgentRole(i)
		}
	}
	return RoleOrchestrator
}

// All returns a copy of every role's status in declaration order.
func (r *AgentRegistry) All() []AgentStatus {
	out := make([]AgentStatus, numRoles)
	copy(out, r.statuses[:])
	return out
}
