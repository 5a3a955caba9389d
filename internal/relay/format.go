package relay

import (
	"fmt"
	"strings"
)

// Message is what the chat boundary gets handed: an attachment color and the
// rendered text.
type Message struct {
	Color string
	Text  string
}

// Slack understands the named attachment colors "good", "warning" and
// "danger"; informational events use explicit hex values.
const (
	colorGood    = "good"
	colorWarning = "warning"
	colorInfo    = "#439FE0"
	colorNeutral = "#CCCCCC"
)

// commentPreviewLimit caps how much comment text makes it into a message.
const commentPreviewLimit = 200

// maxChangeSummaries caps how many change entries render before "+N more".
const maxChangeSummaries = 3

// FormatMessage maps an event onto a color and a one-line message. Kinds
// outside the known set get a neutral generic line built from the raw kind
// string. User mentions found in the description are appended to the text;
// channel targets only ever influence routing.
func FormatMessage(kind Kind, d Details) Message {
	var msg Message
	switch kind {
	case KindCardCreate:
		msg = Message{colorGood, fmt.Sprintf("%s created card %q in %s / %s", d.Username, d.CardTitle, d.BoardName, d.ListName)}
	case KindCardUpdate:
		msg = Message{colorInfo, formatUpdate(d)}
	case KindCardEdit:
		msg = Message{colorInfo, fmt.Sprintf("%s edited card %q", d.Username, d.CardTitle)}
	case KindCardMove:
		msg = Message{colorInfo, fmt.Sprintf("%s moved card %q to %s / %s", d.Username, d.CardTitle, d.BoardName, d.ListName)}
	case KindCardArchive:
		msg = Message{colorWarning, fmt.Sprintf("%s archived card %q", d.Username, d.CardTitle)}
	case KindCardRestore:
		msg = Message{colorGood, fmt.Sprintf("%s restored card %q", d.Username, d.CardTitle)}
	case KindCommentCreate:
		msg = Message{colorInfo, fmt.Sprintf("%s commented on %q: %s", d.Username, d.CardTitle, previewComment(d.CommentText))}
	case KindCommentUpdate:
		msg = Message{colorInfo, fmt.Sprintf("%s edited a comment on %q: %s", d.Username, d.CardTitle, previewComment(d.CommentText))}
	case KindTaskCreate:
		msg = Message{colorInfo, fmt.Sprintf("%s added task %q on card %q", d.Username, d.TaskName, d.CardTitle)}
	case KindTaskUpdate:
		if d.TaskCompleted {
			msg = Message{colorGood, fmt.Sprintf("%s completed task %q on card %q", d.Username, d.TaskName, d.CardTitle)}
		} else {
			msg = Message{colorInfo, fmt.Sprintf("%s updated task %q on card %q", d.Username, d.TaskName, d.CardTitle)}
		}
	case KindTaskDelete:
		msg = Message{colorWarning, fmt.Sprintf("%s removed task %q from card %q", d.Username, d.TaskName, d.CardTitle)}
	default:
		msg = Message{colorNeutral, fmt.Sprintf("%s on card %q by %s", string(kind), d.CardTitle, d.Username)}
	}

	if mentions := userMentions(d.NotificationTargets); len(mentions) > 0 {
		msg.Text += " " + strings.Join(mentions, " ")
	}
	return msg
}

func formatUpdate(d Details) string {
	if len(d.ChangeSummaries) == 0 {
		return fmt.Sprintf("card %q updated by %s", d.CardTitle, d.Username)
	}

	shown := d.ChangeSummaries
	extra := 0
	if len(shown) > maxChangeSummaries {
		extra = len(shown) - maxChangeSummaries
		shown = shown[:maxChangeSummaries]
	}
	text := fmt.Sprintf("%s updated card %q: %s", d.Username, d.CardTitle, strings.Join(shown, ", "))
	if extra > 0 {
		text += fmt.Sprintf(" +%d more", extra)
	}
	return text
}

// previewComment truncates long comment bodies. Counted in runes so a
// multibyte comment is never cut mid-character.
func previewComment(text string) string {
	r := []rune(text)
	if len(r) <= commentPreviewLimit {
		return text
	}
	return string(r[:commentPreviewLimit]) + "..."
}

func userMentions(targets []string) []string {
	var mentions []string
	for _, t := range targets {
		if strings.HasPrefix(t, "@") {
			mentions = append(mentions, t)
		}
	}
	return mentions
}
