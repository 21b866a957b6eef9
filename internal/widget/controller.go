// Package widget implements the weather search widget: the search controller,
// its view state and the renderers drawing that state.
package widget

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/i474232898/weather-search/internal/client"
	"github.com/i474232898/weather-search/internal/weather"
)

// LastSearchKey is the storage key of the last successfully searched city.
const LastSearchKey = "lastWeatherSearch"

// Searcher issues the weather request for a city.
type Searcher interface {
	Search(ctx context.Context, city string) (weather.Report, error)
}

// Storage is the local key-value storage. Get returns "" for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Registrar registers the auxiliary background worker.
type Registrar interface {
	Register(ctx context.Context) error
}

// Observer receives every new state. Observers run with the controller
// locked and must not call back into it.
type Observer func(State)

// Controller binds search submissions to the request/render cycle.
type Controller struct {
	searcher  Searcher
	storage   Storage
	registrar Registrar
	observers []Observer

	mu     sync.Mutex
	state  State
	gen    uint64
	cancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithRegistrar sets the background worker registered by Initialize.
func WithRegistrar(r Registrar) Option {
	return func(c *Controller) { c.registrar = r }
}

// WithObserver adds an observer notified on every state change.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// NewController creates a Controller in the idle state.
func NewController(searcher Searcher, storage Storage, opts ...Option) *Controller {
	c := &Controller{
		searcher: searcher,
		storage:  storage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize restores the last search into the input field without searching,
// then registers the background worker asynchronously. It never waits on the
// worker, and neither step can fail the widget; problems are only logged.
func (c *Controller) Initialize(ctx context.Context) {
	last, err := c.storage.Get(ctx, LastSearchKey)
	if err != nil {
		log.Printf("WARN: widget: could not load last search: %v", err)
	}

	c.mu.Lock()
	if last != "" {
		c.state.Input = last
	}
	c.publish()
	c.mu.Unlock()

	if c.registrar == nil {
		return
	}
	go func() {
		if err := c.registrar.Register(ctx); err != nil {
			log.Printf("WARN: widget: background worker registration failed: %v", err)
			return
		}
		log.Println("INFO: widget: background worker registered")
	}()
}

// State returns the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ExecuteSearch runs one search for cityText.
//
// It returns a *ValidationError for blank input, a *RequestError when the
// request fails and ErrSuperseded when a newer search started before the
// response arrived. Each call supersedes every earlier one: the earlier
// request is cancelled and its result never reaches the display.
func (c *Controller) ExecuteSearch(ctx context.Context, cityText string) error {
	city := strings.TrimSpace(cityText)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state.Input = cityText

	if city == "" {
		c.state.Status = StatusErrorShown
		c.state.Error = ValidationMessage
		c.state.Weather = nil
		c.publish()
		c.mu.Unlock()
		return &ValidationError{Message: ValidationMessage}
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.cancel = cancel

	c.state.Status = StatusLoading
	c.state.Error = ""
	c.state.Weather = nil
	c.publish()
	c.mu.Unlock()

	report, err := c.searcher.Search(reqCtx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		log.Printf("INFO: widget: discarding response for %q from superseded search #%d", city, gen)
		return ErrSuperseded
	}
	c.cancel = nil

	if err != nil {
		msg := client.Message(err)
		if msg == "" {
			msg = GenericErrorMessage
		}
		c.state.Status = StatusErrorShown
		c.state.Error = msg
		c.publish()
		return &RequestError{Message: msg, Err: err}
	}

	panel := Render(report)
	c.state.Status = StatusResultShown
	c.state.Weather = &panel

	if err := c.storage.Set(ctx, LastSearchKey, city); err != nil {
		log.Printf("WARN: widget: could not save last search: %v", err)
	}

	c.publish()
	return nil
}

// Resubmit searches the current input field content, as when the form is
// submitted without editing the field.
func (c *Controller) Resubmit(ctx context.Context) error {
	return c.ExecuteSearch(ctx, c.State().Input)
}

// publish must be called with c.mu held.
func (c *Controller) publish() {
	for _, o := range c.observers {
		o(c.state)
	}
}
