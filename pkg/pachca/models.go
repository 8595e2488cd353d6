package pachca

import (
	"encoding/json"
	"time"
)

// User is a Pachca workspace member, as returned by the profile and user
// endpoints.
type User struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Nickname    string    `json:"nickname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Department  string    `json:"department"`
	Role        string    `json:"role"`
	Suspended   bool      `json:"suspended"`
	Bot         bool      `json:"bot"`
	CreatedAt   time.Time `json:"created_at"`
}

// Chat is a messaging room: a discussion, a channel, or a personal chat.
type Chat struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	OwnerID       int64      `json:"owner_id"`
	MemberIDs     []int64    `json:"member_ids"`
	GroupTagIDs   []int64    `json:"group_tag_ids"`
	Channel       bool       `json:"channel"`
	Public        bool       `json:"public"`
	Personal      bool       `json:"personal"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// Member is a chat member together with its role in that chat.
type Member struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
}

// Member roles.
const (
	RoleAll    = "all"
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleMember = "member"
)

// EntityType names the polymorphic target of a message.
type EntityType string

const (
	EntityDiscussion EntityType = "discussion"
	EntityUser       EntityType = "user"
	EntityThread     EntityType = "thread"
)

// ThreadRef is the thread summary embedded in a message.
type ThreadRef struct {
	ID     int64 `json:"id"`
	ChatID int64 `json:"chat_id"`
}

// Message is a single message in a chat, thread, or user conversation.
type Message struct {
	ID              int64        `json:"id"`
	EntityType      EntityType   `json:"entity_type"`
	EntityID        int64        `json:"entity_id"`
	ChatID          int64        `json:"chat_id"`
	Content         string       `json:"content"`
	UserID          int64        `json:"user_id"`
	ParentMessageID *int64       `json:"parent_message_id"`
	DisplayName     string       `json:"display_name"`
	Thread          *ThreadRef   `json:"thread"`
	Files           []Attachment `json:"files"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Thread is a nested comment sequence anchored to a message.
type Thread struct {
	ID            int64     `json:"id"`
	ChatID        int64     `json:"chat_id"`
	MessageID     int64     `json:"message_id"`
	MessageChatID int64     `json:"message_chat_id"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Attachment is the file summary sent with a message, produced from an
// uploaded File descriptor.
type Attachment struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	FileType FileType `json:"file_type"`
	Size     int64    `json:"size"`
}

// listEnvelope is the response shape of the paginated list endpoints.
// Cursor-style endpoints populate meta.paginate.next_page; page-number
// endpoints return data only.
type listEnvelope struct {
	Data []json.RawMessage `json:"data"`
	Meta struct {
		Paginate struct {
			NextPage *string `json:"next_page"`
		} `json:"paginate"`
	} `json:"meta"`
}
