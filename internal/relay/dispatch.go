package relay

import "strings"

// notifiableKinds is the fixed allow-list of events that may produce a
// delivery. Anything else is dropped regardless of targets.
var notifiableKinds = map[Kind]struct{}{
	KindCardCreate:    {},
	KindCardUpdate:    {},
	KindCardEdit:      {},
	KindCardMove:      {},
	KindCardArchive:   {},
	KindCardRestore:   {},
	KindCommentCreate: {},
	KindCommentUpdate: {},
	KindTaskCreate:    {},
	KindTaskUpdate:    {},
	KindTaskDelete:    {},
}

// ShouldNotify reports whether this event warrants a delivery: the kind must
// be allow-listed and the description must have yielded at least one target.
func ShouldNotify(kind Kind, d Details) bool {
	if _, ok := notifiableKinds[kind]; !ok {
		return false
	}
	return len(d.NotificationTargets) > 0
}

// PickTarget returns the first channel-shaped target (& or # prefix),
// skipping user mentions. The empty string means the description named no
// channel; callers substitute the configured default.
func PickTarget(targets []string) string {
	for _, t := range targets {
		if strings.HasPrefix(t, "&") || strings.HasPrefix(t, "#") {
			return t
		}
	}
	return ""
}
