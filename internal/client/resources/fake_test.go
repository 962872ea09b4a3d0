package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/common"
)

type reply struct {
	status  int
	payload any
	err     error
}

// fakeCaller scripts replies per operation and records every call.
type fakeCaller struct {
	mu       sync.Mutex
	calls    []api.Operation
	params   map[api.Operation][]url.Values
	handlers map[api.Operation]func(params url.Values) reply
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{
		params:   make(map[api.Operation][]url.Values),
		handlers: make(map[api.Operation]func(url.Values) reply),
	}
}

func (f *fakeCaller) on(op api.Operation, h func(params url.Values) reply) *fakeCaller {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[op] = h
	return f
}

func (f *fakeCaller) status(op api.Operation, status int) *fakeCaller {
	return f.on(op, func(url.Values) reply { return reply{status: status} })
}

func (f *fakeCaller) Do(ctx context.Context, op api.Operation, params url.Values, decode api.Decoder) api.Result {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.params[op] = append(f.params[op], params)
	h := f.handlers[op]
	f.mu.Unlock()

	r := reply{status: http.StatusOK}
	if h != nil {
		r = h(params)
	}
	if r.err != nil {
		return api.TransportFailure(r.err)
	}
	if r.status < 200 || r.status > 299 {
		return api.DomainFailure(r.status, nil)
	}
	if decode != nil {
		payload := r.payload
		if payload == nil {
			payload = map[string]any{}
		}
		data, _ := json.Marshal(payload)
		if err := decode(data); err != nil {
			return api.TransportFailure(common.ErrTransport)
		}
	}
	return api.Success(r.status)
}

func (f *fakeCaller) count(op api.Operation) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeCaller) lastParams(op api.Operation) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.params[op]
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

type countingGate struct {
	mu    sync.Mutex
	drops int
}

func (g *countingGate) Drop(context.Context) {
	g.mu.Lock()
	g.drops++
	g.mu.Unlock()
}

func (g *countingGate) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.drops
}
