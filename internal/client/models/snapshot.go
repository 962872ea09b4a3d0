package models

// Snapshot is the last known state of every remote collection.
type Snapshot struct {
	Frames  []Frame
	Cameras []Camera
	Faces   []Face
	// ChatID is the notification channel id; empty when never set.
	ChatID string
	// Loading stays true until the first successful frames refresh.
	Loading bool
}

// Clone returns a copy that shares no slices with s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Frames = append([]Frame(nil), s.Frames...)
	out.Cameras = append([]Camera(nil), s.Cameras...)
	out.Faces = append([]Face(nil), s.Faces...)
	return out
}

// CameraLabel picks the best display name for the camera a frame came from.
// Frames of excluded cameras fall back to the name the frame carries, then
// to the raw id.
func (s Snapshot) CameraLabel(f Frame) string {
	for _, c := range s.Cameras {
		if c.ID == f.CameraID && c.Name != "" {
			return c.Name
		}
	}
	if f.CameraName != "" {
		return f.CameraName
	}
	return f.CameraID
}

// FacesFromNames converts the wire list of face names.
func FacesFromNames(names []string) []Face {
	faces := make([]Face, 0, len(names))
	for _, n := range names {
		faces = append(faces, Face{Name: n})
	}
	return faces
}
