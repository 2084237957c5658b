package search

import (
	"context"
	"log"
	"sync"
	"time"
)

// Response is a completed request.
type Response struct {
	ID      uint64
	Query   string
	Results []Result
	Err     error
	Elapsed time.Duration
}

// Async runs queries off the render loop. Only the response to the most
// recent Submit is ever delivered; older ones are dropped when they finish.
type Async struct {
	client Client

	mu     sync.Mutex
	seq    uint64
	ready  *Response
	cancel context.CancelFunc
}

func NewAsync(client Client) *Async {
	return &Async{client: client}
}

// Submit starts a query and cancels the previous one if it is still running.
func (a *Async) Submit(query string) uint64 {
	ctx, cancel := context.WithCancel(context.Background())

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.seq++
	id := a.seq
	a.cancel = cancel
	a.ready = nil
	a.mu.Unlock()

	go func() {
		defer cancel()
		start := time.Now()
		results, err := a.client.Search(ctx, query)
		resp := &Response{
			ID:      id,
			Query:   query,
			Results: results,
			Err:     err,
			Elapsed: time.Since(start),
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if id != a.seq {
			log.Printf("[Search] Dropping stale response for %q", query)
			return
		}
		a.ready = resp
		a.cancel = nil
	}()
	return id
}

// Poll returns the latest response once, without blocking.
func (a *Async) Poll() (Response, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready == nil {
		return Response{}, false
	}
	resp := *a.ready
	a.ready = nil
	return resp, true
}

// Pending reports whether the latest submitted query has not completed yet.
func (a *Async) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}
