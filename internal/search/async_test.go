package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

// gatedClient blocks each query until its gate is released.
type gatedClient struct {
	gates map[string]chan struct{}
}

func (g *gatedClient) Search(ctx context.Context, query string) ([]Result, error) {
	if gate, ok := g.gates[query]; ok {
		<-gate
	}
	if query == "broken" {
		return nil, errors.New("backend down")
	}
	return []Result{{Path: "/" + query, Name: query}}, nil
}

func waitFor(t *testing.T, a *Async) Response {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if resp, ok := a.Poll(); ok {
			return resp
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no response before deadline")
	return Response{}
}

func TestAsyncDeliversOnce(t *testing.T) {
	a := NewAsync(&gatedClient{})

	id := a.Submit("hello")
	resp := waitFor(t, a)
	if resp.ID != id || resp.Query != "hello" {
		t.Errorf("response: got %+v", resp)
	}
	if len(resp.Results) != 1 || resp.Results[0].Path != "/hello" {
		t.Errorf("results: got %+v", resp.Results)
	}
	if _, ok := a.Poll(); ok {
		t.Error("second Poll() should return nothing")
	}
	if a.Pending() {
		t.Error("Pending() = true after delivery")
	}
}

func TestAsyncDropsStaleResponses(t *testing.T) {
	gate := make(chan struct{})
	a := NewAsync(&gatedClient{gates: map[string]chan struct{}{"old": gate}})

	a.Submit("old")
	if !a.Pending() {
		t.Error("Pending() = false while a query runs")
	}
	newID := a.Submit("new")

	resp := waitFor(t, a)
	if resp.ID != newID || resp.Query != "new" {
		t.Errorf("got response %+v, want the newest", resp)
	}

	close(gate)
	time.Sleep(20 * time.Millisecond)
	if resp, ok := a.Poll(); ok {
		t.Errorf("stale response delivered: %+v", resp)
	}
}

func TestAsyncReportsErrors(t *testing.T) {
	a := NewAsync(&gatedClient{})
	a.Submit("broken")

	resp := waitFor(t, a)
	if resp.Err == nil {
		t.Error("expected error in response")
	}
}
