package vkapi

// Well-known VK error codes. See https://dev.vk.com/reference/errors.
const (
	ErrCodeUnknown              = 1
	ErrCodeAppDisabled          = 2
	ErrCodeUnknownMethod        = 3
	ErrCodeInvalidSignature     = 4
	ErrCodeAuthFailed           = 5
	ErrCodeTooManyRequests      = 6
	ErrCodeNoPermission         = 7
	ErrCodeInvalidRequest       = 8
	ErrCodeFloodControl         = 9
	ErrCodeInternalServer       = 10
	ErrCodeCaptchaNeeded        = 14
	ErrCodeAccessDenied         = 15
	ErrCodeHTTPSRequired        = 16
	ErrCodeValidationRequired   = 17
	ErrCodeUserDeleted          = 18
	ErrCodeMethodDisabled       = 23
	ErrCodeConfirmationRequired = 24
	ErrCodeRateLimitReached     = 29
	ErrCodePrivateProfile       = 30
	ErrCodeParamMissing         = 100
	ErrCodeInvalidAppID         = 101
	ErrCodeInvalidUserID        = 113
	ErrCodeInvalidTimestamp     = 150
	ErrCodeAlbumAccessDenied    = 200
	ErrCodeGroupAccessDenied    = 203
	ErrCodeAlbumFull            = 300
	ErrCodeVotesPermission      = 500
)
