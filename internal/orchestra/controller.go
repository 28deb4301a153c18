package orchestra

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/priyankc/mentora/internal/course"
	"github.com/priyankc/mentora/internal/store"
)

// Controller drives the generation pipeline for one learning journey at a
// time. It owns the run, the agent registry, and the interaction log;
// consumers read state only through Snapshot.
//
// Stages run sequentially: curriculum, then one content request per module,
// then the assessment. The content stage is all-or-nothing: nothing is stored
// until every module body arrived, so the content keys always match the
// curriculum's module titles once the stage completes.
//
// Start supersedes any in-flight run. The old run's requests are not
// cancelled; every mutation after a client call re-checks the run id under
// the lock and stale results are dropped silently.
type Controller struct {
	client course.Generator
	events store.EventRepo // optional, nil disables persistence

	mu        sync.Mutex
	busy      bool
	runID     int64
	journeyID string
	topic     string
	stage     Stage
	log       *InteractionLog
	registry  *AgentRegistry

	curriculum *course.Curriculum
	content    *course.Content
	assessment *course.Assessment
	feedback   *course.Feedback
}

// New creates a Controller using the given generation client. events may be
// nil; then journey transitions are not persisted.
func New(client course.Generator, events store.EventRepo) *Controller {
	return &Controller{
		client:   client,
		events:   events,
		stage:    StageIdle,
		log:      NewInteractionLog(),
		registry: NewAgentRegistry(),
	}
}

// Start begins a new journey for the topic, resetting all state from any
// previous run. It blocks until the main chain settles in Ready or Failed.
// Calling Start mid-run is always safe: the in-flight run is superseded and
// its late results are discarded.
func (c *Controller) Start(ctx context.Context, topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	c.mu.Lock()
	c.runID++
	run := c.runID
	c.busy = true
	c.topic = topic
	c.journeyID = uuid.NewString()
	c.stage = StageIdle
	c.log.Clear()
	c.registry.Reset()
	c.curriculum = nil
	c.content = nil
	c.assessment = nil
	c.feedback = nil
	c.mu.Unlock()

	err := c.runChain(ctx, run, topic)

	c.mu.Lock()
	if c.runID == run {
		c.busy = false
	}
	c.mu.Unlock()
	return err
}

// runChain drives curriculum → content → assessment for the given run.
func (c *Controller) runChain(ctx context.Context, run int64, topic string) error {
	// 1. User → Orchestrator, then delegate to the curriculum agent.
	ok := c.apply(run, func() {
		c.stage = StageCurriculum
		c.log.Append(RoleUser, RoleOrchestrator, fmt.Sprintf("Received learning request: %q", topic))
		c.registry.SetStatus(RoleOrchestrator, "Planning learning path...", true)
		c.log.Append(RoleOrchestrator, RoleCurriculum, "Please generate a curriculum for the topic.")
		c.registry.SetStatus(RoleCurriculum, "Generating curriculum...", true)
	})
	if !ok {
		return nil
	}
	c.record(ctx, "curriculum", topic, nil)

	cur, err := c.client.GenerateCurriculum(ctx, topic)
	if err == nil {
		err = course.ValidateCurriculum(cur)
	}
	if err != nil {
		return c.fail(ctx, run, err)
	}

	ok = c.apply(run, func() {
		c.curriculum = cur
		c.stage = StageContent
		c.log.Append(RoleCurriculum, RoleOrchestrator, fmt.Sprintf("Curriculum generated with %d modules.", len(cur.Modules)))
		c.registry.SetStatus(RoleCurriculum, "Done", false)
		c.registry.SetStatus(RoleOrchestrator, "Reviewing curriculum...", true)
		c.log.Append(RoleOrchestrator, RoleContent, "Curriculum approved. Please generate content for all modules.")
		c.registry.SetStatus(RoleContent, "Generating module content...", true)
	})
	if !ok {
		return nil
	}

	// 2. Content, one request per module in curriculum order. Bodies
	// accumulate locally and are stored only once all of them arrived.
	content := course.NewContent(cur)
	for _, mod := range cur.Modules {
		ok = c.apply(run, func() {
			c.registry.SetStatus(RoleContent, fmt.Sprintf("Generating content for: %q", mod.Title), true)
			c.log.Append(RoleContent, RoleOrchestrator, fmt.Sprintf("Requesting content for module: %s", mod.Title))
		})
		if !ok {
			return nil
		}

		body, err := c.client.GenerateModuleContent(ctx, topic, mod)
		if err != nil {
			return c.fail(ctx, run, err)
		}
		content.Markdown[mod.Title] = body

		ok = c.apply(run, func() {
			c.log.Append(RoleContent, RoleOrchestrator, fmt.Sprintf("Content for module %q has been created.", mod.Title))
		})
		if !ok {
			return nil
		}
	}
	if err := course.ValidateContent(cur, content); err != nil {
		return c.fail(ctx, run, err)
	}

	ok = c.apply(run, func() {
		c.content = content
		c.stage = StageAssessment
		c.registry.SetStatus(RoleContent, "Done", false)
		c.log.Append(RoleOrchestrator, RoleAssessment, "Content generation complete. Please create an assessment.")
		c.registry.SetStatus(RoleAssessment, "Creating assessment quiz...", true)
	})
	if !ok {
		return nil
	}

	// 3. Assessment.
	assessment, err := c.client.GenerateAssessment(ctx, cur)
	if err == nil {
		err = course.ValidateAssessment(assessment)
	}
	if err != nil {
		return c.fail(ctx, run, err)
	}

	ok = c.apply(run, func() {
		c.assessment = assessment
		c.stage = StageReady
		c.log.Append(RoleAssessment, RoleOrchestrator, "Assessment created successfully.")
		c.registry.SetStatus(RoleAssessment, "Done", false)
		c.registry.SetStatus(RoleOrchestrator, "Finalizing learning package...", true)
		c.log.Append(RoleOrchestrator, RoleUser, "Your personalized learning package is ready!")
		c.registry.SetStatus(RoleOrchestrator, "Idle", true)
	})
	if !ok {
		return nil
	}
	c.record(ctx, "ready", topic, nil)

	return nil
}

// SubmitAssessment grades the user's answers and advances to Feedback. It
// requires the pipeline to be at Ready or later and answers covering every
// question; violations are rejected without touching pipeline state.
// Resubmission after feedback is allowed.
func (c *Controller) SubmitAssessment(ctx context.Context, answers course.UserAnswers) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if !c.stage.AtLeast(StageReady) || c.assessment == nil {
		c.mu.Unlock()
		return ErrNotReady
	}

	total := len(c.assessment.Questions)
	answered := 0
	for i := 0; i < total; i++ {
		if answers[i] != "" {
			answered++
		}
	}
	if answered < total {
		c.mu.Unlock()
		return &IncompleteAnswersError{Answered: answered, Total: total}
	}

	run := c.runID
	assessment := c.assessment
	topic := c.topic
	c.busy = true
	c.log.Append(RoleUser, RoleFeedback, fmt.Sprintf("Submitted %d answers for grading.", answered))
	c.registry.SetStatus(RoleFeedback, "Grading your answers...", true)
	c.mu.Unlock()

	fb, err := c.client.GradeAssessment(ctx, assessment, answers)
	if err == nil {
		err = course.ValidateFeedback(assessment, fb)
	}

	if err != nil {
		failErr := c.fail(ctx, run, err)
		c.clearBusy(run)
		return failErr
	}

	ok := c.apply(run, func() {
		c.feedback = fb
		c.stage = StageFeedback
		c.log.AppendDetailed(RoleFeedback, RoleUser,
			fmt.Sprintf("Feedback ready: %.0f%% overall.", fb.OverallScore),
			"assessment-feedback", fb.OverallScore/100)
		c.registry.SetStatus(RoleFeedback, "Done", false)
		c.registry.SetStatus(RoleOrchestrator, "Idle", true)
	})
	c.clearBusy(run)
	if !ok {
		return nil
	}
	c.record(ctx, "feedback", topic, &fb.OverallScore)

	return nil
}

// AskTutor answers a free-form question against the generated course
// content. A tutor failure never fails the pipeline; the stage is left
// untouched and the error is returned to the caller.
func (c *Controller) AskTutor(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return "", ErrBusy
	}
	if c.content == nil {
		c.mu.Unlock()
		return "", ErrNoContent
	}
	run := c.runID
	contextDoc := course.TutorContext(c.content)
	c.busy = true
	c.log.Append(RoleUser, RoleTutoring, question)
	c.registry.SetStatus(RoleTutoring, "Thinking...", true)
	c.mu.Unlock()

	reply, err := c.client.TutorReply(ctx, question, contextDoc)

	if err != nil {
		c.apply(run, func() {
			c.registry.SetStatus(RoleTutoring, "Error", false)
			c.registry.SetStatus(RoleOrchestrator, "Idle", true)
		})
		c.clearBusy(run)
		return "", err
	}

	c.apply(run, func() {
		c.log.Append(RoleTutoring, RoleUser, reply)
		c.registry.SetStatus(RoleTutoring, "Idle", false)
		c.registry.SetStatus(RoleOrchestrator, "Idle", true)
	})
	c.clearBusy(run)
	return reply, nil
}

// apply runs fn under the lock iff the run is still current. Mutations from
// superseded runs are dropped here.
func (c *Controller) apply(run int64, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runID != run {
		return false
	}
	fn()
	return true
}

func (c *Controller) clearBusy(run int64) {
	c.mu.Lock()
	if c.runID == run {
		c.busy = false
	}
	c.mu.Unlock()
}

// fail moves the run to Failed, logs the failure for the user, and returns
// err. A superseded run fails silently.
func (c *Controller) fail(ctx context.Context, run int64, err error) error {
	ok := c.apply(run, func() {
		c.stage = StageFailed
		c.log.Append(RoleSystem, RoleUser, fmt.Sprintf("An error occurred while generating the learning package: %v", err))
		c.registry.SetStatus(RoleOrchestrator, "Error", true)
	})
	if !ok {
		return nil
	}
	c.record(ctx, "failed", c.currentTopic(), nil)
	return err
}

func (c *Controller) currentTopic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.topic
}

// record persists a journey transition. Persistence failures never affect
// the pipeline.
func (c *Controller) record(ctx context.Context, stage, topic string, score *float64) {
	if c.events == nil {
		return
	}
	c.mu.Lock()
	journeyID := c.journeyID
	c.mu.Unlock()

	_ = c.events.AppendJourney(ctx, store.JourneyEventData{
		JourneyID: journeyID,
		Topic:     topic,
		Stage:     stage,
		Score:     score,
	})
}
