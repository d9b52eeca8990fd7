package services

import (
	"sort"
	"strconv"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

// Conversation summarizes one (counterpart, product) thread by its most
// recent message.
type Conversation struct {
	OtherUsername string `json:"otherUsername"`
	ProductCode   *int   `json:"productCode"`
	ProductName   string `json:"productName,omitempty"`
	ProductImage  string `json:"productImage,omitempty"`
	LastMessage   string `json:"lastMessage"`
	UnreadCount   int    `json:"unreadCount"`
}

func conversationKey(other string, productCode *int) string {
	if productCode == nil {
		return other + ":"
	}
	return other + ":" + strconv.Itoa(*productCode)
}

func counterpart(username string, msg *models.Message) string {
	if msg.SenderUsername == username {
		return msg.ReceiverUsername
	}
	return msg.SenderUsername
}

// BuildConversations groups every message touching username by
// (counterpart, product code) and keeps the chronologically latest message
// per group. The unread count only covers messages the user received, never
// ones they sent. Groups come back sorted by recency of their representative
// message, newest first.
//
// The function is a pure transform over the supplied messages so it can be
// exercised without a database.
func BuildConversations(username string, messages []models.Message) []Conversation {
	latest := make(map[string]*models.Message)
	unread := make(map[string]int)

	for i := range messages {
		msg := &messages[i]
		key := conversationKey(counterpart(username, msg), msg.ProductCode)

		if current, ok := latest[key]; !ok || msg.CreatedAt.After(current.CreatedAt) {
			latest[key] = msg
		}
		if msg.SenderUsername != username && !msg.IsRead {
			unread[key]++
		}
	}

	conversations := make([]Conversation, 0, len(latest))
	for key, msg := range latest {
		conv := Conversation{
			OtherUsername: counterpart(username, msg),
			ProductCode:   msg.ProductCode,
			LastMessage:   msg.Content,
			UnreadCount:   unread[key],
		}
		if msg.Product != nil {
			conv.ProductName = msg.Product.Name
			conv.ProductImage = msg.Product.ImagePath
		}
		conversations = append(conversations, conv)
	}

	sort.Slice(conversations, func(i, j int) bool {
		a := latest[conversationKey(conversations[i].OtherUsername, conversations[i].ProductCode)]
		b := latest[conversationKey(conversations[j].OtherUsername, conversations[j].ProductCode)]
		return a.CreatedAt.After(b.CreatedAt)
	})

	return conversations
}
