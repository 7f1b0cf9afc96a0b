package constants

const (
	// ContextKeyUserID is both the session key and the gin context key for the current user.
	ContextKeyUserID = "user_id"

	// ContextKeyUser is the gin context key holding the resolved *models.User.
	ContextKeyUser = "user"

	// ContextKeyRequestID is the gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "worklog_session"

	// SessionMaxAge is the session lifetime in seconds (7 days).
	SessionMaxAge = 86400 * 7
)

const (
	// ActivityTitle is the fixed title of every calendar event.
	ActivityTitle = "work"

	// MaxNotesLength is the number of characters kept from activity notes.
	MaxNotesLength = 255
)

const (
	// ISODateLayout is used for calendar event dates.
	ISODateLayout = "2006-01-02"

	// DetailDateLayout is used for statistics detail rows.
	DetailDateLayout = "02.01.2006"
)

// Period names accepted by the statistics endpoints.
const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodCustom = "custom"
)

// Literal messages returned to the browser.
const (
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgFeedbackRequired   = "Будь ласка, заповніть усі поля"
	MsgFeedbackFailed     = "Помилка при збереженні відгуку"
	MsgUnknownPeriod      = "Невідомий період"
)
