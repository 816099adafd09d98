package client

import (
	"context"
	"sync"
	"time"
)

// invocation is one captured Transport.Invoke call.
type invocation struct {
	Operation string
	Request   any
}

// fakeTransport records invocations and replays canned responses.
type fakeTransport struct {
	mu sync.Mutex

	// Responses maps an operation to the raw response returned for it.
	Responses map[string]map[string]any

	// Err, when set, is returned from every call.
	Err error

	Calls []invocation
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{Responses: make(map[string]map[string]any)}
}

// Invoke implements Transport.
func (f *fakeTransport) Invoke(_ context.Context, operation string, request any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, invocation{Operation: operation, Request: request})
	if f.Err != nil {
		return nil, f.Err
	}
	if resp, ok := f.Responses[operation]; ok {
		return resp, nil
	}
	return map[string]any{}, nil
}

// Respond sets the payload returned under "<operation>Result".
func (f *fakeTransport) Respond(operation string, result any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[operation] = map[string]any{operation + "Result": result}
}

func (f *fakeTransport) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *fakeTransport) LastCall() invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return invocation{}
	}
	return f.Calls[len(f.Calls)-1]
}

// fakeFactory hands out a single fakeTransport and records each build.
type fakeFactory struct {
	mu        sync.Mutex
	transport *fakeTransport
	err       error
	builds    []TransportOptions
}

func (f *fakeFactory) Build(opts TransportOptions) (Transport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builds = append(f.builds, opts)
	if f.err != nil {
		return nil, f.err
	}
	if f.transport == nil {
		f.transport = newFakeTransport()
	}
	return f.transport, nil
}

func (f *fakeFactory) Builds() []TransportOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TransportOptions(nil), f.builds...)
}

// newTestClient returns a Client wired to a fake transport.
func newTestClient(opts ...Option) (*Client, *fakeTransport, *fakeFactory) {
	ft := newFakeTransport()
	factory := &fakeFactory{transport: ft}
	all := append([]Option{WithTransportFactory(factory.Build)}, opts...)
	return New("user", "secret", all...), ft, factory
}

// stepClock advances by a fixed step on every Now call.
type stepClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

func newStepClock(start time.Time, step time.Duration) *stepClock {
	return &stepClock{current: start, step: step}
}

func (s *stepClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.current
	s.current = s.current.Add(s.step)
	return now
}
