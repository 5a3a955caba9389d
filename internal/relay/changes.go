package relay

import (
	"fmt"
	"time"

	"github.com/alexose/planka-notifications/internal/models"
)

const dueDateLayout = "2006-01-02 15:04"

// summarizeChanges compares the pre- and post-update card and describes each
// field that differs, in a fixed order: title, description, due date, list,
// completion. Equal fields contribute nothing. Callers guarantee both items
// are present.
func summarizeChanges(prev, cur *models.EventData) []string {
	old, now := prev.Item, cur.Item

	var summaries []string
	if old.Name != now.Name {
		summaries = append(summaries, fmt.Sprintf("title %q -> %q", old.Name, now.Name))
	}
	if old.Description != now.Description {
		// Descriptions can be long; only the fact of the change is reported.
		summaries = append(summaries, "description updated")
	}
	if old.DueDate != now.DueDate {
		summaries = append(summaries, fmt.Sprintf("due date %s -> %s", formatDueDate(old.DueDate), formatDueDate(now.DueDate)))
	}
	if old.ListID != now.ListID {
		from := listName(prev.Included, old.ListID)
		to := listName(cur.Included, now.ListID)
		summaries = append(summaries, fmt.Sprintf("moved from %q to %q", from, to))
	}
	if old.IsCompleted != now.IsCompleted {
		if now.IsCompleted {
			summaries = append(summaries, "marked completed")
		} else {
			summaries = append(summaries, "marked incomplete")
		}
	}
	return summaries
}

// formatDueDate renders a due date for humans. An absent date reads "none";
// anything that is not RFC 3339 passes through untouched.
func formatDueDate(raw string) string {
	if raw == "" {
		return "none"
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(dueDateLayout)
}

// listName resolves a list ID against the lists included in one half of the
// payload. The old name comes from prevData's includes, the new one from
// data's.
func listName(included *models.Included, id string) string {
	if included == nil {
		return defaultValue
	}
	for _, l := range included.Lists {
		if l.ID == id {
			return l.Name
		}
	}
	if len(included.Lists) > 0 {
		return included.Lists[0].Name
	}
	return defaultValue
}
