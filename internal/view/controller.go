package view

import (
	"context"
	"strings"

	"github.com/alesr/pricewatch/internal/listing"
)

type Fetcher interface {
	FetchListings(ctx context.Context) (*listing.Envelope, error)
}

// Result is the outcome of one fetch, applied to the controller by Resolve.
type Result struct {
	Envelope *listing.Envelope
	Err      error
}

// Controller tracks the listing view state. It is not safe for concurrent
// use: Start, Retry and Resolve are meant to be called from one event loop,
// while Fetch may run elsewhere.
type Controller struct {
	fetcher Fetcher
	state   State
}

func New(fetcher Fetcher) *Controller {
	return &Controller{fetcher: fetcher, state: Loading{}}
}

func (c *Controller) State() State {
	return c.state
}

// Start enters Loading and reports that a fetch must be issued.
func (c *Controller) Start() bool {
	c.state = Loading{}
	return true
}

// Retry is only honoured from Failed. While a fetch is in flight or after a
// successful load it is a no-op and returns false.
func (c *Controller) Retry() bool {
	if _, ok := c.state.(Failed); !ok {
		return false
	}
	c.state = Loading{}
	return true
}

func (c *Controller) Fetch(ctx context.Context) Result {
	env, err := c.fetcher.FetchListings(ctx)
	return Result{Envelope: env, Err: err}
}

func (c *Controller) Resolve(res Result) State {
	c.state = resolve(res)
	return c.state
}

// Load runs a blocking fetch from the current state and applies it.
func (c *Controller) Load(ctx context.Context) State {
	return c.Resolve(c.Fetch(ctx))
}

func resolve(res Result) State {
	if res.Err != nil || res.Envelope == nil {
		return Failed{Message: GenericErrorMessage}
	}

	env := res.Envelope
	if !env.Success {
		msg := strings.TrimSpace(env.Error)
		if msg == "" {
			msg = GenericErrorMessage
		}
		return Failed{Message: msg}
	}

	listings := env.Listings
	if listings == nil {
		listings = []listing.Listing{}
	}
	return Loaded{Listings: listings}
}
