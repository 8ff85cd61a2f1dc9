package conversationRepo

import (
	"sort"
	"sync"
	"time"

	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/utils"

	"go.uber.org/zap"
)

// MemoryConversationRepo is an in-process ConversationRepository. It backs
// tests and single-node deployments that run without MongoDB.
type MemoryConversationRepo struct {
	mu            sync.RWMutex
	conversations map[string]*models.Conversation
	current       map[string]string
}

// NewMemoryConversationRepo creates an empty in-memory store.
func NewMemoryConversationRepo() *MemoryConversationRepo {
	return &MemoryConversationRepo{
		conversations: make(map[string]*models.Conversation),
		current:       make(map[string]string),
	}
}

func (r *MemoryConversationRepo) Create(id, title string) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.conversations[id]; ok {
		c := cloneConversation(existing)
		return &c, nil
	}

	if title == "" {
		title = models.DefaultConversationTitle
	}
	now := time.Now()
	conv := &models.Conversation{
		Info: models.ConversationInfo{
			ID:            id,
			CreatedAt:     now,
			LastMessageAt: now,
			Title:         title,
			MessageCount:  0,
		},
		Messages: []models.Message{},
	}
	r.conversations[id] = conv

	c := cloneConversation(conv)
	return &c, nil
}

func (r *MemoryConversationRepo) Get(id string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, nil
	}
	c := cloneConversation(conv)
	return &c, nil
}

func (r *MemoryConversationRepo) Append(id string, msg models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[id]
	if !ok {
		utils.GetLogger().Warn("append to missing conversation", zap.String("conversationID", id))
		return nil
	}

	conv.Messages = append(conv.Messages, msg)
	conv.Info.MessageCount = len(conv.Messages)
	conv.Info.LastMessageAt = msg.CreatedAt
	if title := deriveTitle(conv.Info.Title, msg); title != "" {
		conv.Info.Title = title
	}
	return nil
}

func (r *MemoryConversationRepo) List() ([]models.ConversationInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]models.ConversationInfo, 0, len(r.conversations))
	for _, conv := range r.conversations {
		infos = append(infos, conv.Info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].LastMessageAt.After(infos[j].LastMessageAt)
	})
	return infos, nil
}

func (r *MemoryConversationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conversations, id)
	for userID, cur := range r.current {
		if cur == id {
			delete(r.current, userID)
		}
	}
	return nil
}

func (r *MemoryConversationRepo) SetCurrent(userID, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current[userID] = conversationID
	return nil
}

func (r *MemoryConversationRepo) GetCurrent(userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current[userID], nil
}

func (r *MemoryConversationRepo) ClearCurrent(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.current, userID)
	return nil
}

// cloneConversation copies the transcript so callers can never mutate stored
// state through a returned pointer.
func cloneConversation(c *models.Conversation) models.Conversation {
	out := *c
	out.Messages = make([]models.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}
