package model

// Author identifies who wrote a community post. Locally created posts are
// always attributed to the configured current-user identity.
type Author struct {
	Name     string
	Avatar   string
	Initials string
}

// CommunityPost is an entry in the social feed. Likes increments through the
// like operation with no per-user dedup; Comments and Shares are
// display-only counters no operation mutates.
type CommunityPost struct {
	ID        string
	Author    Author
	// Timestamp is a display string ("Just now", "2 hours ago"), not a
	// parseable time.
	Timestamp string
	Content   string
	Likes     int
	Comments  int
	Shares    int
}
