package domain

// Session is the explicit state object owned by one dashboard user.
// It replaces implicit global UI state: the current parameter tuple and
// the identity of the series generated from it live here, the series
// data itself lives in the series store.
type Session struct {
	SessionID string // unique session identifier
	UserName  string // display name, "Guest Researcher" if skipped
	ProjectID string // optional project identifier
	Params    Params // current parameter tuple, including base seed
	SeriesID  string // identifier of the current series, "" before first generation
	CreatedAt int64  // Unix timestamp in milliseconds
	UpdatedAt int64  // timestamp of last regeneration (ms)
}

// GuestUserName is used when the entry form is skipped or left blank.
const GuestUserName = "Guest Researcher"
