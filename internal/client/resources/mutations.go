package resources

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/client/failures"
	"github.com/dmitrijs2005/facecam/internal/common"
)

// DefaultCameraName replaces an empty name on rename.
const DefaultCameraName = "No Name"

// Outcome is what a mutation hands back to the view that triggered it.
type Outcome struct {
	// Status is the HTTP status of the mutation itself; zero on transport
	// failure.
	Status  int
	Failure *failures.Failure
}

func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Message is the inline text for a failed outcome, empty on success.
func (o Outcome) Message() string {
	if o.Failure == nil {
		return ""
	}
	return o.Failure.Message()
}

func (s *Sync) EnrollCamera(ctx context.Context, cameraID, cameraName string) Outcome {
	return s.mutate(ctx, api.OpEnroll, url.Values{
		common.FieldCameraID: {cameraID},
		common.FieldName:     {cameraName},
	})
}

func (s *Sync) RenameCamera(ctx context.Context, cameraID, newName string) Outcome {
	if strings.TrimSpace(newName) == "" {
		newName = DefaultCameraName
	}
	return s.mutate(ctx, api.OpRename, url.Values{
		common.FieldCameraID: {cameraID},
		common.FieldName:     {newName},
	})
}

// ExcludeCamera unlinks the camera from the account. Frames it produced stay
// in the feed until the server stops listing them.
func (s *Sync) ExcludeCamera(ctx context.Context, cameraID string) Outcome {
	return s.mutate(ctx, api.OpExclude, url.Values{
		common.FieldCameraID: {cameraID},
	})
}

func (s *Sync) DeleteFace(ctx context.Context, faceName string) Outcome {
	return s.mutate(ctx, api.OpDelete, url.Values{
		common.FieldName: {faceName},
	})
}

func (s *Sync) ClearFrame(ctx context.Context, cameraID, frameName string) Outcome {
	return s.mutate(ctx, api.OpClear, url.Values{
		common.FieldCameraID:  {cameraID},
		common.FieldImageName: {frameName},
	})
}

func (s *Sync) UpdateNotificationChannel(ctx context.Context, chatID string) Outcome {
	return s.mutate(ctx, api.OpTelegram, url.Values{
		common.FieldChatID: {chatID},
	})
}

// SaveFace promotes a frame to a named face, then clears the frame. The
// clear only runs if the save was accepted; its own failure is logged and
// does not change the 200 returned for the save.
func (s *Sync) SaveFace(ctx context.Context, faceName, cameraID, frameName string) Outcome {
	saved := s.mutate(ctx, api.OpSave, url.Values{
		common.FieldName:      {faceName},
		common.FieldCameraID:  {cameraID},
		common.FieldImageName: {frameName},
	})
	if !saved.OK() {
		return saved
	}

	if cleared := s.ClearFrame(ctx, cameraID, frameName); !cleared.OK() {
		s.log.Warn(ctx, "frame saved as face but not cleared",
			"camera_id", cameraID, "frame", frameName, "error", cleared.Failure)
	}
	return Outcome{Status: http.StatusOK}
}
