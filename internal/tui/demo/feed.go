package demo

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newPost builds a fresh timeline entry for the composing user.
func newPost(author, handle, body string) Post {
	return Post{
		ID:       uuid.NewString(),
		Author:   author,
		Handle:   handle,
		Body:     body,
		PostedAt: time.Now(),
	}
}

// seedFeed returns the demo timeline, newest first.
func seedFeed() []Post {
	now := time.Now()
	return []Post{
		{
			ID:       uuid.NewString(),
			Author:   "Ada Lovelace",
			Handle:   "@ada",
			Body:     "The Analytical Engine weaves algebraical patterns just as the Jacquard loom weaves flowers and leaves.",
			Likes:    42,
			PostedAt: now.Add(-10 * time.Minute),
		},
		{
			ID:       uuid.NewString(),
			Author:   "Grace Hopper",
			Handle:   "@grace",
			Body:     "The most dangerous phrase in the language is: we've always done it this way.",
			Likes:    128,
			PostedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:       uuid.NewString(),
			Author:   "Alan Turing",
			Handle:   "@alan",
			Body:     "We can only see a short distance ahead, but we can see plenty there that needs to be done.",
			Likes:    77,
			PostedAt: now.Add(-26 * time.Hour),
		},
	}
}

// relativeTime formats an approximate age for the timeline, coarser as the
// post gets older.
func relativeTime(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return strconv.Itoa(int(age.Minutes())) + "m"
	case age < 24*time.Hour:
		return strconv.Itoa(int(age.Hours())) + "h"
	default:
		return strconv.Itoa(int(age.Hours()/24)) + "d"
	}
}
