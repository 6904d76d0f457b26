package constants

// Session and context keys
const (
	SessionCookieName   = "task_session"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)

// ProtectedAdminID is the seeded administrator that receives public
// submissions and can never be deleted.
const ProtectedAdminID uint64 = 1

const (
	MinPasswordLength = 6

	// DefaultStatsWindowDays is the trailing window used by the daily stats
	// endpoint when no "days" query parameter is supplied.
	DefaultStatsWindowDays = 7
	MaxStatsWindowDays     = 366

	// StatsTitleSeparator joins the titles completed on the same day.
	StatsTitleSeparator = "|||"

	MaxAIGeneratedTasks = 20
)
