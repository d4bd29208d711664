package service

import (
	"sort"

	"github.com/google/uuid"

	"localhire/internal/model"
)

// ConversationSummary is the inbox-list view of one conversation: the other
// participant, the most recent message as a preview, and how many of their
// messages the current user has not read yet.
type ConversationSummary struct {
	OtherUserID uuid.UUID         `json:"otherUserId"`
	OtherUser   *model.PublicUser `json:"otherUser,omitempty"`
	LastMessage model.Message     `json:"lastMessage"`
	UnreadCount int               `json:"unreadCount"`
}

// GroupConversations reduces a flat message list into per-conversation
// summaries for currentUserID, keyed by the other participant. The preview
// is the message with the greatest createdAt, found by incremental
// comparison: the input is not assumed to be sorted. Unread counts only
// messages addressed to the current user. Pure function, backend-agnostic.
func GroupConversations(messages []model.Message, currentUserID uuid.UUID) []ConversationSummary {
	byOther := make(map[uuid.UUID]*ConversationSummary)

	for _, msg := range messages {
		if msg.SenderID != currentUserID && msg.ReceiverID != currentUserID {
			continue
		}
		other := msg.SenderID
		if other == currentUserID {
			other = msg.ReceiverID
		}

		summary, ok := byOther[other]
		if !ok {
			summary = &ConversationSummary{OtherUserID: other, LastMessage: msg}
			byOther[other] = summary
		} else if msg.CreatedAt.After(summary.LastMessage.CreatedAt) {
			summary.LastMessage = msg
		}

		if msg.ReceiverID == currentUserID && !msg.IsRead {
			summary.UnreadCount++
		}
	}

	summaries := make([]ConversationSummary, 0, len(byOther))
	for _, summary := range byOther {
		summaries = append(summaries, *summary)
	}
	// most recently active conversation first, ties by other-user id
	sort.Slice(summaries, func(i, j int) bool {
		ti, tj := summaries[i].LastMessage.CreatedAt, summaries[j].LastMessage.CreatedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return summaries[i].OtherUserID.String() < summaries[j].OtherUserID.String()
	})
	return summaries
}
