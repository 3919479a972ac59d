package domain

// Reference records come from the external tabular source, deduplicated by
// case-folded identifier (keep-first).

// Account is a tracked Instagram account.
type Account struct {
	Username string
	Amount   int
}

// Channel is a tracked YouTube channel: either a UC… channel id or a handle.
type Channel struct {
	ChannelID string
	Amount    int
}

// Profile is a tracked TikTok profile. Username is the sheet-configured
// handle and wins over the API author name when storing records.
type Profile struct {
	UserID   string
	Username string
	Amount   int
}
