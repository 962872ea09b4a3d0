package common

// Form field names understood by the remote service.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldSessionToken = "session_token"
	FieldCameraID     = "camera_id"
	FieldName         = "name"
	FieldImageName    = "image_name"
	FieldChatID       = "chat_id"
)

// RequestIDHeaderName carries the per-request id on outbound requests.
const RequestIDHeaderName = "X-Request-Id"
