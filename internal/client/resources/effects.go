package resources

import (
	"context"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"golang.org/x/sync/errgroup"
)

// Collection is a set of snapshot parts to refresh.
type Collection uint8

const (
	Frames Collection = 1 << iota
	Settings

	None Collection = 0
	All             = Frames | Settings
)

func (c Collection) Has(other Collection) bool {
	return c&other == other && other != None
}

func (c Collection) String() string {
	switch c {
	case None:
		return "none"
	case Frames:
		return "frames"
	case Settings:
		return "settings"
	case All:
		return "frames+settings"
	default:
		return "unknown"
	}
}

// effects lists what each mutation invalidates on success. Save has no
// direct effect: it chains into a clear, which carries its own.
var effects = map[api.Operation]Collection{
	api.OpEnroll:   All,
	api.OpRename:   All,
	api.OpExclude:  All,
	api.OpClear:    All,
	api.OpTelegram: All,
	api.OpDelete:   Settings,
	api.OpSave:     None,
}

// EffectsOf returns the collections invalidated by a successful op.
func EffectsOf(op api.Operation) Collection {
	return effects[op]
}

// invalidate refreshes every collection in c concurrently and waits for all
// of them. Refresh failures are logged by the refreshes themselves.
func (s *Sync) invalidate(ctx context.Context, c Collection) {
	var g errgroup.Group

	if c.Has(Settings) {
		g.Go(func() error {
			s.RefreshSettings(ctx)
			return nil
		})
	}
	if c.Has(Frames) {
		g.Go(func() error {
			s.RefreshFrames(ctx)
			return nil
		})
	}

	_ = g.Wait()
}
