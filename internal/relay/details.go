package relay

import (
	"encoding/json"

	"github.com/alexose/planka-notifications/internal/models"
)

// defaultValue stands in for any field the payload does not carry.
const defaultValue = "N/A"

// Details is the normalized view of one webhook event. A fresh record is
// built per request and treated as read-only afterwards.
type Details struct {
	CardTitle           string
	BoardName           string
	ListName            string
	Username            string
	NotificationTargets []string
	CommentText         string
	IsComment           bool
	TaskName            string
	TaskCompleted       bool
	IsTask              bool
	Description         string
	ChangeSummaries     []string
}

// NewDetails returns a record with every field defaulted. Extraction
// overwrites only what the payload actually provides, so the record is
// always fully populated.
func NewDetails() Details {
	return Details{
		CardTitle: defaultValue,
		BoardName: defaultValue,
		ListName:  defaultValue,
		Username:  defaultValue,
	}
}

// ExtractDetails parses a raw webhook body into the event kind and the
// normalized detail record. A body that does not parse yields a zero kind
// and an all-defaults record; missing fields at any depth default the same
// way. It never fails.
func ExtractDetails(raw []byte) (Kind, Details) {
	d := NewDetails()

	var payload models.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", d
	}
	kind := Kind(payload.Event)

	if u := payload.User; u != nil {
		d.Username = firstNonEmpty(u.Name, u.Username, defaultValue)
	}

	var item *models.Item
	var included *models.Included
	if payload.Data != nil {
		item = payload.Data.Item
		included = payload.Data.Included
	}
	if included != nil {
		if len(included.Boards) > 0 && included.Boards[0].Name != "" {
			d.BoardName = included.Boards[0].Name
		}
		if len(included.Lists) > 0 && included.Lists[0].Name != "" {
			d.ListName = included.Lists[0].Name
		}
	}

	switch kind.Category() {
	case CategoryComment:
		d.IsComment = true
		d.CommentText = defaultValue
		if item != nil {
			d.CommentText = firstNonEmpty(item.Text, item.Content, defaultValue)
		}
		applyIncludedCard(&d, included)
	case CategoryTask:
		d.IsTask = true
		d.TaskName = defaultValue
		if item != nil {
			d.TaskName = firstNonEmpty(item.Name, defaultValue)
			d.TaskCompleted = item.IsCompleted
		}
		applyIncludedCard(&d, included)
	default:
		if item != nil {
			if item.Name != "" {
				d.CardTitle = item.Name
			}
			d.Description = item.Description
		}
	}

	// The extractor always works off the card's description, whichever event
	// kind put it on the record.
	d.NotificationTargets = ExtractTargets(d.Description)

	if kind == KindCardUpdate && item != nil && payload.PrevData != nil && payload.PrevData.Item != nil {
		d.ChangeSummaries = summarizeChanges(payload.PrevData, payload.Data)
	}

	return kind, d
}

// applyIncludedCard copies the parent card's title and description onto the
// record for comment and task events, where the item itself is not the card.
func applyIncludedCard(d *Details, included *models.Included) {
	if included == nil || len(included.Cards) == 0 {
		return
	}
	card := included.Cards[0]
	if card.Name != "" {
		d.CardTitle = card.Name
	}
	d.Description = card.Description
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
