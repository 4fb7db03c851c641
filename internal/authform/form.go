// Package authform holds the state machine behind the login/registration
// form: field values, the active mode, validation, and the submission flow
// against the remote register and login operations.
package authform

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Mode selects which of the two form variants is active.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// FormData is the set of user-entered field values.
type FormData struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// State is a snapshot of the form. At most one of Error and Success is
// non-empty; both are cleared on every input change and at the start of
// every submission.
type State struct {
	Mode    Mode
	Data    FormData
	Error   string
	Success string
	Loading bool
}

// User is the result of a successful registration.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  User
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type LoginRequest struct {
	Username string
	Password string
}

// Service performs the two remote operations the form depends on.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Login(ctx context.Context, req LoginRequest) (Session, error)
}

const (
	DefaultModeSwitchDelay = 2 * time.Second

	registerSuccessMessage = "User registered successfully"
	loginSuccessMessage    = "Login successful"
	registerFailedMessage  = "Registration failed"
	loginFailedMessage     = "Login failed"
)

// Form owns the mutable form state. All mutations are serialized through a
// mutex; after Close every pending mutation (a late remote response, the
// delayed mode switch) becomes a no-op.
type Form struct {
	mu     sync.Mutex
	state  State
	closed bool

	svc Service

	onLoginSuccess func(Session)
	onCancel       func()
	render         func(State)

	modeSwitchDelay time.Duration
	switchTimer     *time.Timer
}

type Option func(*Form)

// OnLoginSuccess registers a callback invoked once after a successful login,
// with the login result. The parent uses it to record the session.
func OnLoginSuccess(fn func(Session)) Option {
	return func(f *Form) {
		f.onLoginSuccess = fn
	}
}

// OnCancel registers a callback surfaced as the form's close affordance.
// Hiding the form remains the caller's responsibility.
func OnCancel(fn func()) Option {
	return func(f *Form) {
		f.onCancel = fn
	}
}

// RenderFunc registers an observer invoked with a state snapshot after every
// mutation.
func RenderFunc(fn func(State)) Option {
	return func(f *Form) {
		f.render = fn
	}
}

// ModeSwitchDelay overrides the delay before the automatic switch to login
// mode after a successful registration.
func ModeSwitchDelay(d time.Duration) Option {
	return func(f *Form) {
		f.modeSwitchDelay = d
	}
}

func New(svc Service, opts ...Option) *Form {
	f := &Form{
		svc:             svc,
		modeSwitchDelay: DefaultModeSwitchDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns a snapshot of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanCancel reports whether a cancel callback was supplied, which controls
// whether the close affordance is rendered.
func (f *Form) CanCancel() bool {
	return f.onCancel != nil
}

func (f *Form) SetUsername(v string) { f.setField(func(d *FormData) { d.Username = v }) }
func (f *Form) SetEmail(v string)    { f.setField(func(d *FormData) { d.Email = v }) }
func (f *Form) SetPassword(v string) { f.setField(func(d *FormData) { d.Password = v }) }
func (f *Form) SetConfirmPassword(v string) {
	f.setField(func(d *FormData) { d.ConfirmPassword = v })
}

func (f *Form) setField(set func(*FormData)) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	set(&f.state.Data)
	f.state.Error = ""
	f.state.Success = ""
	snap := f.state
	f.mu.Unlock()

	f.notify(snap)
}

// SwitchMode activates the given mode, resets all fields, clears both
// messages, and cancels a pending delayed mode switch. It does not cancel an
// in-flight submission.
func (f *Form) SwitchMode(m Mode) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.stopSwitchTimerLocked()
	f.state.Mode = m
	f.state.Data = FormData{}
	f.state.Error = ""
	f.state.Success = ""
	snap := f.state
	f.mu.Unlock()

	f.notify(snap)
}

// SubmitRegister validates the form and calls the remote register operation.
// On success the username is kept, the other fields are cleared, and a
// switch to login mode is scheduled after the configured delay.
func (f *Form) SubmitRegister(ctx context.Context) {
	data, ok := f.beginSubmit()
	if !ok {
		return
	}

	if msg := ValidateRegistration(data); msg != "" {
		f.finish(func(s *State) { s.Error = msg })
		return
	}

	_, err := f.svc.Register(ctx, RegisterRequest{
		Username: data.Username,
		Email:    data.Email,
		Password: data.Password,
	})
	if err != nil {
		f.finish(func(s *State) { s.Error = errorMessage(err, registerFailedMessage) })
		return
	}

	if f.finish(func(s *State) {
		s.Success = registerSuccessMessage
		s.Data = FormData{Username: s.Data.Username}
	}) {
		f.scheduleModeSwitch()
	}
}

// SubmitLogin validates the form and calls the remote login operation. On
// success the login-success callback is invoked with the result.
func (f *Form) SubmitLogin(ctx context.Context) {
	data, ok := f.beginSubmit()
	if !ok {
		return
	}

	if msg := ValidateLogin(data); msg != "" {
		f.finish(func(s *State) { s.Error = msg })
		return
	}

	session, err := f.svc.Login(ctx, LoginRequest{
		Username: data.Username,
		Password: data.Password,
	})
	if err != nil {
		f.finish(func(s *State) { s.Error = errorMessage(err, loginFailedMessage) })
		return
	}

	if f.finish(func(s *State) { s.Success = loginSuccessMessage }) {
		if f.onLoginSuccess != nil {
			f.onLoginSuccess(session)
		}
	}
}

// Dismiss invokes the cancel callback, if any.
func (f *Form) Dismiss() {
	if f.onCancel != nil {
		f.onCancel()
	}
}

// Close marks the form as gone. The pending mode switch is stopped, and any
// state update arriving afterwards is dropped.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.stopSwitchTimerLocked()
}

// beginSubmit clears both messages and raises the loading flag. It returns
// the field values to submit, or ok=false when the form is already closed.
func (f *Form) beginSubmit() (FormData, bool) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return FormData{}, false
	}
	f.state.Error = ""
	f.state.Success = ""
	f.state.Loading = true
	data := f.state.Data
	snap := f.state
	f.mu.Unlock()

	f.notify(snap)
	return data, true
}

// finish applies the submission outcome and drops the loading flag. It
// reports whether the update was applied, i.e. the form was not closed in
// the meantime.
func (f *Form) finish(apply func(*State)) bool {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return false
	}
	apply(&f.state)
	f.state.Loading = false
	snap := f.state
	f.mu.Unlock()

	f.notify(snap)
	return true
}

func (f *Form) scheduleModeSwitch() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.stopSwitchTimerLocked()
	f.switchTimer = time.AfterFunc(f.modeSwitchDelay, f.delayedModeSwitch)
}

func (f *Form) delayedModeSwitch() {
	f.mu.Lock()
	if f.closed || f.state.Mode != ModeRegister {
		f.mu.Unlock()
		return
	}
	f.switchTimer = nil
	f.state.Mode = ModeLogin
	f.state.Success = ""
	snap := f.state
	f.mu.Unlock()

	f.notify(snap)
}

func (f *Form) stopSwitchTimerLocked() {
	if f.switchTimer != nil {
		f.switchTimer.Stop()
		f.switchTimer = nil
	}
}

func (f *Form) notify(snap State) {
	if f.render != nil {
		f.render(snap)
	}
}

func errorMessage(err error, fallback string) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
