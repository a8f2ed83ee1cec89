package submission

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Shortener turns a long URL into a short one.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Navigator opens target. The default opens the system browser.
type Navigator func(target string) error

// Options tune the controller. The zero value is the recommended behaviour.
type Options struct {
	// KeepErrorOnEdit leaves the last failure visible while the user types.
	KeepErrorOnEdit bool
	// AllowOverlap lets Begin start a request while another is pending.
	AllowOverlap bool
	Navigator    Navigator
	Logger       *zap.Logger
	// RequestContext decorates the context handed to the Shortener. The
	// HTTP client uses it to forward the attempt's request ID.
	RequestContext func(ctx context.Context, a Attempt) context.Context
}

// Attempt identifies one started submission.
type Attempt struct {
	Seq       uint64
	RequestID string
	URL       string
	Started   time.Time
}

// Outcome is the settled result of an attempt.
type Outcome struct {
	Attempt  Attempt
	ShortURL string
	Err      error
}

// Controller owns the form state and the request lifecycle.
type Controller struct {
	shortener Shortener
	opts      Options
	logger    *zap.Logger

	mu       sync.Mutex
	snapshot Snapshot
}

// NewController builds a Controller in the Idle phase with empty fields.
func NewController(s Shortener, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		shortener: s,
		opts:      opts,
		logger:    logger,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// OnInputChange records the latest value of the URL field.
func (c *Controller) OnInputChange(value string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Input = value
	if !c.opts.KeepErrorOnEdit {
		c.snapshot.Error = ""
	}
	if c.snapshot.Phase.Settled() {
		c.snapshot.Phase = PhaseIdle
	}
	return c.snapshot
}

// Begin starts a submission of the current input.
func (c *Controller) Begin() (Attempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.snapshot.Input) == 0 {
		return Attempt{}, ErrEmptyInput
	}
	if c.snapshot.InFlight > 0 && !c.opts.AllowOverlap {
		c.logger.Debug("submit ignored, request pending", zap.Int("in_flight", c.snapshot.InFlight))
		return Attempt{}, ErrInFlight
	}

	c.snapshot.Attempts++
	c.snapshot.InFlight++
	c.snapshot.Phase = PhaseAwaiting

	attempt := Attempt{
		Seq:       c.snapshot.Attempts,
		RequestID: uuid.NewString(),
		URL:       c.snapshot.Input,
		Started:   time.Now(),
	}
	c.logger.Info("submit",
		zap.Uint64("attempt", attempt.Seq),
		zap.String("request_id", attempt.RequestID),
		zap.String("url", attempt.URL),
	)
	return attempt, nil
}

// Resolve performs the network call for a. It does not touch controller state.
func (c *Controller) Resolve(ctx context.Context, a Attempt) Outcome {
	if c.shortener == nil {
		return Outcome{Attempt: a, Err: errors.New("no shortening service configured")}
	}
	if c.opts.RequestContext != nil {
		ctx = c.opts.RequestContext(ctx, a)
	}
	short, err := c.shortener.Shorten(ctx, a.URL)
	return Outcome{Attempt: a, ShortURL: short, Err: err}
}

// Settle applies an outcome. The input is always cleared.
func (c *Controller) Settle(o Outcome) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot.InFlight > 0 {
		c.snapshot.InFlight--
	}

	err := o.Err
	if err == nil && strings.TrimSpace(o.ShortURL) == "" {
		err = errors.New("empty short url")
	}

	fields := []zap.Field{
		zap.Uint64("attempt", o.Attempt.Seq),
		zap.String("request_id", o.Attempt.RequestID),
		zap.Duration("elapsed", time.Since(o.Attempt.Started)),
	}

	var outcome Phase
	if err != nil {
		failure := &Failure{Cause: err}
		c.snapshot.Error = failure.Error()
		outcome = PhaseFailed
		c.logger.Warn("submit failed", append(fields, zap.Error(err))...)
	} else {
		c.snapshot.Result = o.ShortURL
		c.snapshot.Error = ""
		outcome = PhaseSucceeded
		c.logger.Info("submit succeeded", append(fields, zap.String("short_url", o.ShortURL))...)
	}

	if c.snapshot.InFlight == 0 {
		c.snapshot.Phase = outcome
	}
	c.snapshot.LastSettled = time.Now()
	c.snapshot.Input = ""
	return c.snapshot
}

// Submit runs Begin, Resolve and Settle in sequence. Only precondition errors
// are returned; request failures are reported through the snapshot.
func (c *Controller) Submit(ctx context.Context) (Snapshot, error) {
	attempt, err := c.Begin()
	if err != nil {
		return c.Snapshot(), err
	}
	return c.Settle(c.Resolve(ctx, attempt)), nil
}

// Redirect navigates to the current short URL.
func (c *Controller) Redirect() error {
	c.mu.Lock()
	target := c.snapshot.Result
	c.mu.Unlock()

	if len(target) == 0 {
		return ErrNoResult
	}
	if c.opts.Navigator == nil {
		return errors.New("no navigator configured")
	}
	c.logger.Info("redirect", zap.String("url", target))
	return c.opts.Navigator(target)
}
