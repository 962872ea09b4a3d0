package models

// Frame is one captured image as listed by the service. Frames are never
// edited locally; they only disappear after a clear or save-as-face followed
// by a refresh.
type Frame struct {
	// CameraID references Camera.ID. The camera may already be excluded.
	CameraID string `json:"cameraId"`
	// CameraName is the display name the service attached, if any.
	CameraName string `json:"cameraName"`
	// Name identifies the frame within its camera.
	Name string `json:"name"`
	// URL is a presigned link to the image.
	URL  string `json:"url"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Camera is a camera linked to the current account.
type Camera struct {
	// ID is the external identifier the user typed when enrolling.
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Face is a recognized identity. The name is its key.
type Face struct {
	Name string
}

// Settings is the /settings payload. Cameras, faces and chat id always
// travel together.
type Settings struct {
	Cameras []Camera `json:"cameras"`
	Faces   []string `json:"faces"`
	ChatID  string   `json:"chat_id"`
}
