package errors

// User-friendly error messages
const (
	MsgMissingServiceKey = "API key not configured"
	MsgFetchFailed       = "The transaction registry could not be reached. Please try again in a few minutes."
	MsgParseFailed       = "The transaction registry returned an unreadable response. Please try again later."
	MsgInvalidParameters = "The provided parameters are invalid. Please check your input and try again."
	MsgNotFound          = "The requested resource was not found."
	MsgRateLimited       = "You're requesting too quickly! Please wait a moment and try again."
	MsgInternalError     = "Something went wrong on our end. Please try again later."
)
