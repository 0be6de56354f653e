package leads

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the single active view of a demo request workflow
type State int

const (
	StateClosed State = iota
	StateFormOpen
	StateSubmitting
	StateSuccessShown
	StateErrorShown
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateFormOpen:
		return "form_open"
	case StateSubmitting:
		return "submitting"
	case StateSuccessShown:
		return "success_shown"
	case StateErrorShown:
		return "error_shown"
	}
	return "unknown"
}

// OutcomeKind classifies how a submission attempt resolved
type OutcomeKind string

const (
	OutcomePending   OutcomeKind = "pending"
	OutcomeSuccess   OutcomeKind = "success"
	OutcomeRejected  OutcomeKind = "rejected"
	OutcomeTransport OutcomeKind = "transport"
	OutcomeMalformed OutcomeKind = "malformed"
	OutcomeAborted   OutcomeKind = "aborted"
)

// Outcome is the transient result of one submission attempt
type Outcome struct {
	Kind OutcomeKind
	// Message is the endpoint-provided detail, empty when the generic fallback applies
	Message  string
	Lead     LeadRequest
	Err      error
	Duration time.Duration
}

// IsFailure reports whether the attempt ended in any failure kind
func (o Outcome) IsFailure() bool {
	return o.Kind != OutcomeSuccess && o.Kind != OutcomePending
}

// Submitter delivers a lead to the intake endpoint. A nil error means the
// endpoint accepted the lead; failures are mapped by Options.Classify.
type Submitter interface {
	Submit(ctx context.Context, lead LeadRequest) error
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, lead LeadRequest) error

func (f SubmitterFunc) Submit(ctx context.Context, lead LeadRequest) error {
	return f(ctx, lead)
}

// Classifier maps a submitter error to an outcome kind and a user-facing message
type Classifier func(err error) (OutcomeKind, string)

// Options configures a Workflow
type Options struct {
	// ReopenOnError makes acknowledging the error dialog return to the form with data intact
	ReopenOnError bool
	// Classify maps submitter errors; the default treats every error as a transport failure
	Classify Classifier
	// Now is the clock used to measure attempt duration
	Now func() time.Time
}

// View is an immutable snapshot of a workflow for rendering
type View struct {
	State        State
	Lead         LeadRequest
	ErrorMessage string
	CanSubmit    bool
}

// Workflow owns one visitor's demo request: the form data, the active view and
// the single in-flight submission.
type Workflow struct {
	mu        sync.Mutex
	submitter Submitter
	opts      Options

	state    State
	lead     LeadRequest
	errorMsg string

	// attempt identifies the in-flight submission; a resolved call whose id no
	// longer matches was aborted and its result is dropped.
	attempt uint64
	cancel  context.CancelFunc
}

// NewWorkflow creates a workflow in the Closed state
func NewWorkflow(submitter Submitter, opts Options) *Workflow {
	if opts.Classify == nil {
		opts.Classify = func(error) (OutcomeKind, string) { return OutcomeTransport, "" }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Workflow{
		submitter: submitter,
		opts:      opts,
		state:     StateClosed,
	}
}

// State returns the active view
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Lead returns a copy of the current form data
func (w *Workflow) Lead() LeadRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lead
}

// View returns a snapshot for rendering
func (w *Workflow) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return View{
		State:        w.state,
		Lead:         w.lead,
		ErrorMessage: w.errorMsg,
		CanSubmit:    w.state == StateFormOpen && w.lead.Validate() == nil,
	}
}

// CanSubmit reports whether the submit control is enabled
func (w *Workflow) CanSubmit() bool {
	return w.View().CanSubmit
}

// Open shows an empty form. It has no effect unless the workflow is Closed.
func (w *Workflow) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateClosed {
		return
	}
	w.lead = LeadRequest{}
	w.errorMsg = ""
	w.state = StateFormOpen
}

// Close abandons the form. A pending submission is cancelled and its result discarded.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateFormOpen, StateErrorShown:
	case StateSubmitting:
		w.abortLocked()
	default:
		return
	}
	w.lead = LeadRequest{}
	w.errorMsg = ""
	w.state = StateClosed
}

// Dismiss acknowledges the success or error dialog
func (w *Workflow) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateSuccessShown:
		w.state = StateClosed
	case StateErrorShown:
		w.errorMsg = ""
		if w.opts.ReopenOnError {
			w.state = StateFormOpen
			return
		}
		w.lead = LeadRequest{}
		w.state = StateClosed
	}
}

// SetField updates one form input
func (w *Workflow) SetField(f Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateFormOpen {
		if w.state == StateSubmitting {
			return ErrSubmitInFlight
		}
		return ErrNotOpen
	}
	if !w.lead.set(f, value) {
		return &FieldError{Field: f}
	}
	return nil
}

// SetFields updates several inputs at once, ignoring unknown keys
func (w *Workflow) SetFields(values map[Field]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateFormOpen {
		if w.state == StateSubmitting {
			return ErrSubmitInFlight
		}
		return ErrNotOpen
	}
	for f, v := range values {
		w.lead.set(f, v)
	}
	return nil
}

// Submit sends the form data to the intake endpoint and moves to the success
// or error view. It blocks until the call resolves or the workflow is closed.
// Guard errors (ErrNotOpen, ErrSubmitInFlight, ErrIncomplete, *FieldError)
// leave the state unchanged and issue no call.
func (w *Workflow) Submit(ctx context.Context) (Outcome, error) {
	w.mu.Lock()
	switch w.state {
	case StateFormOpen:
	case StateSubmitting:
		w.mu.Unlock()
		return Outcome{Kind: OutcomePending}, ErrSubmitInFlight
	default:
		w.mu.Unlock()
		return Outcome{}, ErrNotOpen
	}
	if err := w.lead.Validate(); err != nil {
		w.mu.Unlock()
		return Outcome{}, err
	}

	lead := w.lead
	w.attempt++
	attempt := w.attempt
	callCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.state = StateSubmitting
	w.mu.Unlock()

	started := w.opts.Now()
	err := w.submitter.Submit(callCtx, lead)
	cancel()

	outcome := Outcome{Lead: lead, Err: err, Duration: w.opts.Now().Sub(started)}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.attempt != attempt || w.state != StateSubmitting {
		outcome.Kind = OutcomeAborted
		if outcome.Err == nil {
			outcome.Err = context.Canceled
		}
		return outcome, nil
	}
	w.cancel = nil

	if err == nil {
		outcome.Kind = OutcomeSuccess
		w.lead = LeadRequest{}
		w.errorMsg = ""
		w.state = StateSuccessShown
		return outcome, nil
	}

	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// The caller went away; the visitor still sees the error dialog on reload.
		outcome.Kind = OutcomeAborted
	} else {
		outcome.Kind, outcome.Message = w.opts.Classify(err)
	}
	w.errorMsg = outcome.Message
	w.state = StateErrorShown
	return outcome, nil
}

// abortLocked cancels the in-flight call; the caller holds w.mu
func (w *Workflow) abortLocked() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.attempt++
}
