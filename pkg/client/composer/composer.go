// Package composer drives a single submission of user text through moderation:
// analyze first, publish only approved text, and let the user choose when a
// rewrite is offered.
package composer

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/tendril/pkg/client"
	"github.com/limbo/tendril/pkg/entity"
)

type State int

const (
	Idle State = iota
	Analyzing
	// Approved means the approved text is being published.
	Approved
	SuggestionPending
	Blocked
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Analyzing:
		return "analyzing"
	case Approved:
		return "approved"
	case SuggestionPending:
		return "suggestion_pending"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// WarningThreshold is the remaining analysis count at which a warning is shown.
const WarningThreshold = 2

var (
	ErrBusy            = errors.New("a submission is already in progress")
	ErrDecisionPending = errors.New("choose the suggested version or edit the original first")
	ErrNoSuggestion    = errors.New("there is no suggestion to use")
	// ErrStale is returned when the text was edited while it was being analyzed.
	ErrStale = errors.New("the text changed during analysis, submit again")
)

// Draft is the text being composed. Title is used by posts only.
type Draft struct {
	Title   string
	Content string
}

// Gateway binds a composer to one kind of content.
type Gateway[T any] interface {
	Validate(d Draft) error
	Analyze(ctx context.Context, d Draft) (*entity.ModerationAnalysis, error)
	// Suggestion is the draft the analysis proposes instead of the original.
	Suggestion(a *entity.ModerationAnalysis) Draft
	Commit(ctx context.Context, analysisID uuid.UUID, d Draft) (T, error)
}

// Outcome reports how a submit or a choice ended. Published is set only when
// content was stored.
type Outcome[T any] struct {
	State     State
	Published bool
	Result    T
}

// View is a snapshot for rendering.
type View struct {
	State      State
	Draft      Draft
	Suggestion *Draft
	RateLimit  *entity.RateLimitInfo
	// Warning is set when few analyses remain.
	Warning bool
	Err     error
}

type Composer[T any] struct {
	gw Gateway[T]

	mu         sync.Mutex
	state      State
	draft      Draft
	generation uint64
	analysis   *entity.ModerationAnalysis
	suggestion *Draft
	rateLimit  *entity.RateLimitInfo
	lastErr    error
}

func New[T any](gw Gateway[T]) *Composer[T] {
	return &Composer[T]{gw: gw}
}

// SetText replaces the draft. Any suggestion, block and rate limit info is dropped.
// An analysis in flight is discarded when it returns.
func (c *Composer[T]) SetText(d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
	c.generation++
	c.analysis = nil
	c.suggestion = nil
	c.rateLimit = nil
	c.lastErr = nil
	if c.state == SuggestionPending || c.state == Blocked {
		c.state = Idle
	}
}

// Submit analyzes the draft and publishes it when it is clean.
func (c *Composer[T]) Submit(ctx context.Context) (Outcome[T], error) {
	var none Outcome[T]

	c.mu.Lock()
	switch c.state {
	case Analyzing, Approved:
		c.mu.Unlock()
		return none, ErrBusy
	case SuggestionPending:
		c.mu.Unlock()
		return none, ErrDecisionPending
	case Blocked:
		err := &client.ModerationBlockedError{Analysis: c.analysis}
		c.mu.Unlock()
		return none, err
	}
	draft := c.draft
	if err := c.gw.Validate(draft); err != nil {
		c.lastErr = err
		c.mu.Unlock()
		return none, err
	}
	c.state = Analyzing
	c.lastErr = nil
	gen := c.generation
	c.mu.Unlock()

	analysis, err := c.gw.Analyze(ctx, draft)

	c.mu.Lock()
	if gen != c.generation {
		c.state = Idle
		c.mu.Unlock()
		return none, ErrStale
	}
	if err != nil {
		var rlErr *client.RateLimitError
		if errors.As(err, &rlErr) {
			info := rlErr.Info
			c.rateLimit = &info
		}
		c.state = Idle
		c.lastErr = err
		c.mu.Unlock()
		return none, err
	}
	c.analysis = analysis
	if analysis.RateLimit != nil {
		info := *analysis.RateLimit
		c.rateLimit = &info
	}
	switch {
	case !analysis.ContainsNegativeWords:
		c.state = Approved
		c.mu.Unlock()
		return c.commit(ctx, analysis.AnalysisID, draft, gen)
	case analysis.SuggestionAvailable:
		suggestion := c.gw.Suggestion(analysis)
		c.suggestion = &suggestion
		c.state = SuggestionPending
		c.mu.Unlock()
		return Outcome[T]{State: SuggestionPending}, nil
	default:
		c.state = Blocked
		err := &client.ModerationBlockedError{Analysis: analysis}
		c.lastErr = err
		c.mu.Unlock()
		return Outcome[T]{State: Blocked}, err
	}
}

// UseRewrite publishes the suggested version under the same analysis.
func (c *Composer[T]) UseRewrite(ctx context.Context) (Outcome[T], error) {
	c.mu.Lock()
	if c.state != SuggestionPending || c.suggestion == nil || c.analysis == nil {
		c.mu.Unlock()
		return Outcome[T]{}, ErrNoSuggestion
	}
	suggestion := *c.suggestion
	analysisID := c.analysis.AnalysisID
	c.draft = suggestion
	c.generation++
	gen := c.generation
	c.state = Approved
	c.mu.Unlock()
	return c.commit(ctx, analysisID, suggestion, gen)
}

// EditOriginal discards the suggestion and keeps the original text for editing.
func (c *Composer[T]) EditOriginal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != SuggestionPending {
		return
	}
	c.state = Idle
	c.suggestion = nil
	c.analysis = nil
}

func (c *Composer[T]) commit(ctx context.Context, analysisID uuid.UUID, d Draft, gen uint64) (Outcome[T], error) {
	res, err := c.gw.Commit(ctx, analysisID, d)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	c.suggestion = nil
	c.analysis = nil
	if err != nil {
		c.lastErr = err
		return Outcome[T]{State: Idle}, err
	}
	// a newer edit survives a successful publish
	if gen == c.generation {
		c.draft = Draft{}
	}
	c.lastErr = nil
	return Outcome[T]{State: Idle, Published: true, Result: res}, nil
}

func (c *Composer[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Composer[T]) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{
		State: c.state,
		Draft: c.draft,
		Err:   c.lastErr,
	}
	if c.suggestion != nil {
		s := *c.suggestion
		v.Suggestion = &s
	}
	if c.rateLimit != nil {
		info := *c.rateLimit
		v.RateLimit = &info
		v.Warning = info.RemainingRequests <= WarningThreshold
	}
	return v
}
