// Package page holds the UI-independent state of the icmt pages. The web
// and terminal front-ends render these pages; neither owns any logic.
package page

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/form"
	"github.com/icmt/icmt/internal/log"
)

// Messages shown inline on the registration page.
const (
	MsgLoadEventsFailed   = "Failed to load available events"
	MsgSelectEvent        = "Please select an event"
	MsgRegistrationFailed = "Registration failed"
	PlaceholderEvent      = "-- Select an event --"
)

// RootRoute is where a successful submission navigates to.
const RootRoute = "/"

// EventService is the slice of the backend the registration page needs.
type EventService interface {
	Events(ctx context.Context) ([]api.Event, error)
	RegisterParticipant(ctx context.Context, eventID string, sub api.Submission) (*api.Participant, error)
}

// Navigator moves the user to another route.
type Navigator func(to string)

// State is the observable lifecycle of the registration page.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Registration is the event registration page.
type Registration struct {
	mu       sync.Mutex
	svc      EventService
	navigate Navigator
	now      func() time.Time

	form        *form.Form
	events      []api.Event
	selected    string
	errMsg      string
	loading     bool
	state       State
	loaded      bool
	participant *api.Participant
}

// RegistrationOption configures a Registration page.
type RegistrationOption func(*Registration)

// WithClock overrides the clock used for the graduation year window.
func WithClock(now func() time.Time) RegistrationOption {
	return func(r *Registration) { r.now = now }
}

// NewRegistration builds the page around its collaborators.
func NewRegistration(svc EventService, navigate Navigator, opts ...RegistrationOption) *Registration {
	r := &Registration{
		svc:      svc,
		navigate: navigate,
		now:      time.Now,
		form:     form.New(),
		events:   []api.Event{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches the open events once. Later calls do nothing.
func (r *Registration) Load(ctx context.Context) {
	r.mu.Lock()
	if r.loaded {
		r.mu.Unlock()
		return
	}
	r.loaded = true
	r.mu.Unlock()

	events, err := r.svc.Events(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		log.Error("Failed to load events: %v", err)
		r.errMsg = MsgLoadEventsFailed
		r.events = []api.Event{}
		return
	}

	if events == nil {
		events = []api.Event{}
	}
	r.events = events
	if len(events) > 0 {
		r.selected = events[0].ID.String()
	}
}

// SelectEvent changes the selected event id. An empty id clears the selection.
func (r *Registration) SelectEvent(id string) {
	r.mu.Lock()
	r.selected = id
	r.mu.Unlock()
}

// Update applies fn to the form under the page lock.
func (r *Registration) Update(fn func(f *form.Form)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.form)
}

// Submit validates the form and posts it for the selected event. It returns
// nil only after the backend accepted the registration and the page navigated
// to the root route.
func (r *Registration) Submit(ctx context.Context) error {
	r.mu.Lock()
	if r.loading {
		r.mu.Unlock()
		return errors.ErrSubmissionInFlight
	}
	if r.state == StateSuccess {
		r.mu.Unlock()
		return errors.ErrPageClosed
	}

	r.errMsg = ""
	r.loading = true
	r.state = StateLoading

	eventID := r.selected
	if eventID == "" {
		r.failLocked(MsgSelectEvent)
		r.mu.Unlock()
		return errors.ErrNoEventSelected
	}

	if err := r.form.Validate(r.now()); err != nil {
		msg := MsgRegistrationFailed
		var verr *form.ValidationError
		if stderrors.As(err, &verr) {
			msg = verr.First()
		}
		r.failLocked(msg)
		r.mu.Unlock()
		return err
	}

	sub, err := r.form.Submission()
	if err != nil {
		r.failLocked(MsgRegistrationFailed)
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	log.Debug("Submitting registration for event %s", eventID)
	participant, err := r.svc.RegisterParticipant(ctx, eventID, sub)

	r.mu.Lock()
	if err != nil {
		r.failLocked(errorMessage(err, MsgRegistrationFailed))
		r.mu.Unlock()
		return err
	}
	r.loading = false
	r.state = StateSuccess
	r.participant = participant
	navigate := r.navigate
	r.mu.Unlock()

	if navigate != nil {
		navigate(RootRoute)
	}
	return nil
}

func (r *Registration) failLocked(msg string) {
	r.errMsg = msg
	r.loading = false
	r.state = StateError
}

// errorMessage turns a failure into the text shown to the user. Only
// messages chosen by the server are surfaced.
func errorMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// EventOption is one entry of the event select.
type EventOption struct {
	Value    string
	Label    string
	Selected bool
}

// RegistrationView is a consistent snapshot of the page for rendering.
type RegistrationView struct {
	Events          []EventOption
	Selected        string
	Values          form.Values
	Error           string
	Loading         bool
	State           State
	GraduationYears []int
	TShirtSizes     []form.Option
	Divisions       []form.Option
	Participant     *api.Participant
}

// HasEvents reports whether any real event can be selected
func (v RegistrationView) HasEvents() bool {
	return len(v.Events) > 1
}

// View snapshots the page state.
func (r *Registration) View() RegistrationView {
	r.mu.Lock()
	defer r.mu.Unlock()

	options := make([]EventOption, 0, len(r.events)+1)
	options = append(options, EventOption{Value: "", Label: PlaceholderEvent, Selected: r.selected == ""})
	for _, ev := range r.events {
		id := ev.ID.String()
		options = append(options, EventOption{Value: id, Label: EventLabel(ev), Selected: id == r.selected})
	}

	return RegistrationView{
		Events:          options,
		Selected:        r.selected,
		Values:          r.form.Values(),
		Error:           r.errMsg,
		Loading:         r.loading,
		State:           r.state,
		GraduationYears: form.GraduationYears(r.now()),
		TShirtSizes:     form.TShirtSizes,
		Divisions:       form.Divisions,
		Participant:     r.participant,
	}
}

// Events returns the loaded events.
func (r *Registration) Events() []api.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]api.Event, len(r.events))
	copy(out, r.events)
	return out
}

// EventLabel renders an event as "name" or "name - location".
func EventLabel(ev api.Event) string {
	if ev.Location != nil && *ev.Location != "" {
		return ev.Name + " - " + *ev.Location
	}
	return ev.Name
}
