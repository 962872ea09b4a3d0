package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/client/failures"
	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/logging"
)

// Caller sends one authenticated operation. *api.Client implements it.
type Caller interface {
	Do(ctx context.Context, op api.Operation, params url.Values, decode api.Decoder) api.Result
}

// SessionGate is told when the server rejects the session.
type SessionGate interface {
	Drop(ctx context.Context)
}

// GateFunc adapts a function to SessionGate.
type GateFunc func(ctx context.Context)

func (f GateFunc) Drop(ctx context.Context) { f(ctx) }

// Sync owns the snapshot. It is safe for concurrent use.
type Sync struct {
	caller Caller
	gate   SessionGate
	log    logging.Logger

	mu   sync.RWMutex
	snap models.Snapshot
}

func New(caller Caller, gate SessionGate, log logging.Logger) *Sync {
	if gate == nil {
		gate = GateFunc(func(context.Context) {})
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Sync{
		caller: caller,
		gate:   gate,
		log:    log,
		snap:   models.Snapshot{Loading: true},
	}
}

// Snapshot returns a copy of the current state.
func (s *Sync) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// RefreshFrames replaces the frames with the server's list, newest first.
// On failure the previous frames stay in place.
func (s *Sync) RefreshFrames(ctx context.Context) *failures.Failure {
	var frames []models.Frame
	res := s.caller.Do(ctx, api.OpFrames, nil, decodeFrames(&frames))
	if f := s.fail(ctx, api.OpFrames, res); f != nil {
		return f
	}

	reversed := make([]models.Frame, len(frames))
	for i, fr := range frames {
		reversed[len(frames)-1-i] = fr
	}

	s.mu.Lock()
	s.snap.Frames = reversed
	s.snap.Loading = false
	s.mu.Unlock()

	s.log.Debug(ctx, "frames refreshed", "count", len(reversed))
	return nil
}

// RefreshSettings replaces cameras, faces and chat id from one response in
// one step.
func (s *Sync) RefreshSettings(ctx context.Context) *failures.Failure {
	var settings models.Settings
	res := s.caller.Do(ctx, api.OpSettings, nil, api.JSON(&settings))
	if f := s.fail(ctx, api.OpSettings, res); f != nil {
		return f
	}

	cameras := append([]models.Camera(nil), settings.Cameras...)
	faces := models.FacesFromNames(settings.Faces)

	s.mu.Lock()
	s.snap.Cameras = cameras
	s.snap.Faces = faces
	s.snap.ChatID = settings.ChatID
	s.mu.Unlock()

	s.log.Debug(ctx, "settings refreshed", "cameras", len(cameras), "faces", len(faces))
	return nil
}

// mutate sends op and, on success, refreshes what the op invalidates.
func (s *Sync) mutate(ctx context.Context, op api.Operation, params url.Values) Outcome {
	res := s.caller.Do(ctx, op, params, nil)
	if f := s.fail(ctx, op, res); f != nil {
		return Outcome{Status: res.Status, Failure: f}
	}

	s.invalidate(ctx, EffectsOf(op))
	return Outcome{Status: res.Status}
}

// fail classifies an unsuccessful result, logs it and drops the session
// when the server rejected it. It returns nil for success.
func (s *Sync) fail(ctx context.Context, op api.Operation, res api.Result) *failures.Failure {
	f := failures.Classify(op, res)
	if f == nil {
		return nil
	}

	switch f.Kind.Category() {
	case failures.CategoryStaleSession:
		s.log.Warn(ctx, "session rejected", "op", string(op))
		s.gate.Drop(ctx)
	case failures.CategoryTransport:
		s.log.Error(ctx, "request failed", "op", string(op), "error", f.Err)
	default:
		s.log.Warn(ctx, "request refused", "op", string(op), "status", f.Status, "kind", f.Message(), "detail", f.Detail)
	}
	return f
}

// decodeFrames accepts either a bare array of frames or an object that
// wraps it under "frames".
func decodeFrames(dst *[]models.Frame) api.Decoder {
	return func(data []byte) error {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var wrapped struct {
				Frames []models.Frame `json:"frames"`
			}
			if err := json.Unmarshal(trimmed, &wrapped); err != nil {
				return err
			}
			*dst = wrapped.Frames
			return nil
		}
		return json.Unmarshal(trimmed, dst)
	}
}
