package models

// WebhookPayload is the envelope Planka POSTs for every event: the event kind
// string, the affected item plus any records it references, and the acting
// user. Update events additionally carry the pre-change item under prevData.
// Every nested object is optional, so consumers nil-check each level.
type WebhookPayload struct {
	Event    string     `json:"event"` // e.g., "cardCreate"
	Data     *EventData `json:"data"`
	PrevData *EventData `json:"prevData"`
	User     *User      `json:"user"`
}

type EventData struct {
	Item     *Item     `json:"item"`
	Included *Included `json:"included"`
}

// Item is the union of the card, comment and task shapes. Planka only fills
// the fields that apply to the event kind; the rest stay zero.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	ListID      string `json:"listId"`
	BoardID     string `json:"boardId"`
	CardID      string `json:"cardId"`
	IsCompleted bool   `json:"isCompleted"`
	Text        string `json:"text"`    // comment body
	Content     string `json:"content"` // comment body in older payloads
}

type Included struct {
	Cards  []Card  `json:"cards"`
	Boards []Board `json:"boards"`
	Lists  []List  `json:"lists"`
}

type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
