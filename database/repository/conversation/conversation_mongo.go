package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/yihao03/Aistronaut/database"
	"github.com/yihao03/Aistronaut/models"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const currentConversationPrefix = "chat:current:"

// MongoConversationRepo implements ConversationRepository using MongoDB for
// transcripts and Redis for the current-conversation pointer.
type MongoConversationRepo struct {
	coll  *mongo.Collection
	state *redis.Client
}

// NewMongoConversationRepo creates a new ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	coll := database.MongoClient.Database("aistronaut").Collection("conversations")
	repo := &MongoConversationRepo{coll: coll, state: utils.GetStateCacheClient()}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create conversation indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "info.id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "info.last_message_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new empty conversation. An existing id returns the stored
// conversation unchanged.
func (r *MongoConversationRepo) Create(id, title string) (*models.Conversation, error) {
	existing, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if title == "" {
		title = models.DefaultConversationTitle
	}
	now := time.Now()
	conv := models.Conversation{
		Info: models.ConversationInfo{
			ID:            id,
			CreatedAt:     now,
			LastMessageAt: now,
			Title:         title,
			MessageCount:  0,
		},
		Messages: []models.Message{},
	}

	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation %s: %w", id, err)
	}
	return &conv, nil
}

// Get retrieves a conversation by id; nil when absent.
func (r *MongoConversationRepo) Get(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"info.id": id}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %s: %w", id, err)
	}
	return &conv, nil
}

// Append pushes a message onto the transcript and refreshes the header.
func (r *MongoConversationRepo) Append(id string, msg models.Message) error {
	conv, err := r.Get(id)
	if err != nil {
		return err
	}
	if conv == nil {
		utils.GetLogger().Warn("append to missing conversation", zap.String("conversationID", id))
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"info.last_message_at": msg.CreatedAt,
		"info.message_count":   conv.Info.MessageCount + 1,
	}
	if title := deriveTitle(conv.Info.Title, msg); title != "" {
		set["info.title"] = title
	}

	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  set,
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"info.id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append to conversation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		utils.GetLogger().Warn("append to missing conversation", zap.String("conversationID", id))
	}
	return nil
}

// List returns all conversation headers, most recently active first.
func (r *MongoConversationRepo) List() ([]models.ConversationInfo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"info": 1}).
		SetSort(bson.D{{Key: "info.last_message_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Info models.ConversationInfo `bson:"info"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode conversation list: %w", err)
	}

	infos := make([]models.ConversationInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, d.Info)
	}
	return infos, nil
}

// Delete removes a conversation by id.
func (r *MongoConversationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"info.id": id}); err != nil {
		return fmt.Errorf("failed to delete conversation %s: %w", id, err)
	}
	return nil
}

// SetCurrent records the active conversation for a user.
func (r *MongoConversationRepo) SetCurrent(userID, conversationID string) error {
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()
	return r.state.Set(ctx, currentConversationPrefix+userID, conversationID, 0).Err()
}

// GetCurrent returns the active conversation id for a user, or "" when unset.
func (r *MongoConversationRepo) GetCurrent(userID string) (string, error) {
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()
	id, err := r.state.Get(ctx, currentConversationPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// ClearCurrent drops the active conversation pointer for a user.
func (r *MongoConversationRepo) ClearCurrent(userID string) error {
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()
	return r.state.Del(ctx, currentConversationPrefix+userID).Err()
}
