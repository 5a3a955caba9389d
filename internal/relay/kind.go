// Package relay holds the event-to-message pipeline: classifying incoming
// Planka events, extracting a normalized detail record, scanning card
// descriptions for notification targets, and formatting the outgoing message.
// Everything in here is pure; the HTTP and Slack boundaries live elsewhere.
package relay

import "strings"

// Kind is the raw Planka event identifier, e.g. "cardCreate".
type Kind string

const (
	KindCardCreate    Kind = "cardCreate"
	KindCardUpdate    Kind = "cardUpdate"
	KindCardEdit      Kind = "cardEdit"
	KindCardMove      Kind = "cardMove"
	KindCardArchive   Kind = "cardArchive"
	KindCardRestore   Kind = "cardRestore"
	KindCommentCreate Kind = "commentCreate"
	KindCommentUpdate Kind = "commentUpdate"
	KindTaskCreate    Kind = "taskCreate"
	KindTaskUpdate    Kind = "taskUpdate"
	KindTaskDelete    Kind = "taskDelete"
)

// Category is the coarse event family, derived once from the kind string so
// the substring checks don't spread through the extraction code.
type Category int

const (
	CategoryCard Category = iota
	CategoryComment
	CategoryTask
)

// Category classifies the kind case-insensitively: anything mentioning a
// comment is a comment event, then tasks, and everything else falls back to
// a card event.
func (k Kind) Category() Category {
	s := strings.ToLower(string(k))
	switch {
	case strings.Contains(s, "comment"):
		return CategoryComment
	case strings.Contains(s, "task"):
		return CategoryTask
	default:
		return CategoryCard
	}
}
