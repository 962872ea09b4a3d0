package api

// Operation names a remote endpoint; it is also the request path.
type Operation string

const (
	OpLogin    Operation = "login"
	OpRegister Operation = "register"
	OpLogout   Operation = "logout"
	OpFrames   Operation = "frames"
	OpSettings Operation = "settings"
	OpEnroll   Operation = "enroll"
	OpRename   Operation = "rename"
	OpExclude  Operation = "exclude"
	OpSave     Operation = "save"
	OpClear    Operation = "clear"
	OpDelete   Operation = "delete"
	OpTelegram Operation = "telegram"
)

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Message      string `json:"message"`
	SessionToken string `json:"session_token"`
}
