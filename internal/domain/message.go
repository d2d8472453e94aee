package domain

import "time"

type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// InboxEntry es la vista de un mensaje recibido junto al username del remitente.
type InboxEntry struct {
	Body   string `json:"message"`
	Author string `json:"author"`
}
