// Package view holds UI-only state: which view is showing, which single
// item in each list is being edited, the text typed so far, and the inline
// error next to each form. It never talks to the network; the CLI reads it
// to decide what to render and which buffer an input line goes to.
package view

type View string

const (
	Feed     View = "feed"
	Settings View = "settings"
)

// NoFrame means no frame is being named.
const NoFrame = -1

type Controller struct {
	view     View
	menuOpen bool

	// renaming is the camera id under rename, "" for none.
	renaming   string
	renameText string

	// naming is the feed index of the frame being saved as a face.
	naming     int
	namingText string

	chatEditing bool
	chatText    string

	newCameraID   string
	newCameraName string

	feedError     string
	settingsError string
	loginError    string
}

func NewController() *Controller {
	return &Controller{view: Feed, naming: NoFrame}
}

func (c *Controller) View() View { return c.view }

// Show switches views and closes the menu.
func (c *Controller) Show(v View) {
	if v != Feed && v != Settings {
		return
	}
	c.view = v
	c.menuOpen = false
}

func (c *Controller) ToggleMenu()    { c.menuOpen = !c.menuOpen }
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// BeginRename makes cameraID the only camera under rename.
func (c *Controller) BeginRename(cameraID string) {
	c.renaming = cameraID
	c.renameText = ""
}

func (c *Controller) SetRenameText(s string) { c.renameText = s }

// Renaming returns the camera under rename and the text typed for it.
func (c *Controller) Renaming() (cameraID, text string, ok bool) {
	return c.renaming, c.renameText, c.renaming != ""
}

func (c *Controller) EndRename() {
	c.renaming = ""
	c.renameText = ""
}

// ToggleNaming opens the face-name input for the frame at index, or closes
// it when that frame is already open. The feed error is reset either way.
func (c *Controller) ToggleNaming(index int) {
	if c.naming == index {
		c.naming = NoFrame
	} else {
		c.naming = index
	}
	c.namingText = ""
	c.feedError = ""
}

func (c *Controller) SetNamingText(s string) { c.namingText = s }

func (c *Controller) Naming() (index int, text string, ok bool) {
	return c.naming, c.namingText, c.naming != NoFrame
}

// FaceSaved closes the naming input after a successful save.
func (c *Controller) FaceSaved() {
	c.naming = NoFrame
	c.namingText = ""
	c.feedError = ""
}

func (c *Controller) BeginChatEdit() {
	c.chatEditing = true
	c.chatText = ""
}

func (c *Controller) SetChatText(s string) { c.chatText = s }

func (c *Controller) ChatText() string { return c.chatText }

func (c *Controller) EndChatEdit() {
	c.chatEditing = false
	c.chatText = ""
}

// ChatEditing reports whether the chat-id input is shown. It is always shown
// while no chat id is set.
func (c *Controller) ChatEditing(currentChatID string) bool {
	return c.chatEditing || currentChatID == ""
}

func (c *Controller) SetNewCamera(id, name string) {
	c.newCameraID = id
	c.newCameraName = name
}

func (c *Controller) NewCamera() (id, name string) {
	return c.newCameraID, c.newCameraName
}

// CameraEnrolled resets the enroll form after a success.
func (c *Controller) CameraEnrolled() {
	c.newCameraID = ""
	c.newCameraName = ""
	c.settingsError = ""
}

func (c *Controller) SetFeedError(msg string)     { c.feedError = msg }
func (c *Controller) FeedError() string           { return c.feedError }
func (c *Controller) SetSettingsError(msg string) { c.settingsError = msg }
func (c *Controller) SettingsError() string       { return c.settingsError }
func (c *Controller) SetLoginError(msg string)    { c.loginError = msg }
func (c *Controller) LoginError() string          { return c.loginError }
