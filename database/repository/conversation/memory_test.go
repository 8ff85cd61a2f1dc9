package conversationRepo

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/yihao03/Aistronaut/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(role, text string, at time.Time) models.Message {
	return models.Message{
		ID:        "msg_" + text,
		Role:      role,
		Text:      text,
		CreatedAt: at,
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	repo := NewMemoryConversationRepo()

	first, err := repo.Create("conv-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConversationTitle, first.Info.Title)

	require.NoError(t, repo.Append("conv-1", msg(models.RoleUser, "hello", time.Now())))

	again, err := repo.Create("conv-1", "other title")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", again.Info.ID)
	assert.Len(t, again.Messages, 1, "re-creating must return the existing transcript unchanged")
}

func TestAppendRoundTrip(t *testing.T) {
	repo := NewMemoryConversationRepo()
	_, err := repo.Create("conv-1", "")
	require.NoError(t, err)

	base := time.Now()
	for i := 0; i < 10; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		require.NoError(t, repo.Append("conv-1", msg(role, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Second))))
	}

	conv, err := repo.Get("conv-1")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 10)
	for i, m := range conv.Messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), m.Text, "append order must be preserved")
	}
	assert.Equal(t, 10, conv.Info.MessageCount)
	assert.Equal(t, conv.Messages[9].CreatedAt, conv.Info.LastMessageAt)
}

func TestTitleSetOnceFromFirstUserMessage(t *testing.T) {
	repo := NewMemoryConversationRepo()
	_, err := repo.Create("conv-1", "")
	require.NoError(t, err)

	// Assistant messages never retitle.
	require.NoError(t, repo.Append("conv-1", msg(models.RoleAssistant, "welcome", time.Now())))
	conv, err := repo.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConversationTitle, conv.Info.Title)

	require.NoError(t, repo.Append("conv-1", msg(models.RoleUser, "Plan me a week in Bangkok", time.Now())))
	conv, err = repo.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, "Plan me a week in Bangkok", conv.Info.Title)

	// Further user messages leave the title alone.
	require.NoError(t, repo.Append("conv-1", msg(models.RoleUser, "Actually make it Tokyo", time.Now())))
	conv, err = repo.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, "Plan me a week in Bangkok", conv.Info.Title)
}

func TestTitleTruncation(t *testing.T) {
	repo := NewMemoryConversationRepo()
	_, err := repo.Create("conv-1", "")
	require.NoError(t, err)

	long := strings.Repeat("x", 80)
	require.NoError(t, repo.Append("conv-1", msg(models.RoleUser, long, time.Now())))

	conv, err := repo.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 50)+"...", conv.Info.Title)
}

func TestAppendToMissingConversationIsSwallowed(t *testing.T) {
	repo := NewMemoryConversationRepo()
	assert.NoError(t, repo.Append("ghost", msg(models.RoleUser, "anyone there?", time.Now())))
}

func TestListSortsByLastActivity(t *testing.T) {
	repo := NewMemoryConversationRepo()
	base := time.Now()

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(id, "")
		require.NoError(t, err)
		require.NoError(t, repo.Append(id, msg(models.RoleUser, "hi "+id, base.Add(time.Duration(i)*time.Minute))))
	}
	// Touch "a" again so it becomes the most recent.
	require.NoError(t, repo.Append("a", msg(models.RoleUser, "again", base.Add(time.Hour))))

	infos, err := repo.List()
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "a", infos[0].ID)
	assert.Equal(t, "c", infos[1].ID)
	assert.Equal(t, "b", infos[2].ID)
}

func TestDeleteClearsCurrentPointer(t *testing.T) {
	repo := NewMemoryConversationRepo()
	_, err := repo.Create("conv-1", "")
	require.NoError(t, err)
	require.NoError(t, repo.SetCurrent("user-1", "conv-1"))

	require.NoError(t, repo.Delete("conv-1"))

	conv, err := repo.Get("conv-1")
	require.NoError(t, err)
	assert.Nil(t, conv)

	current, err := repo.GetCurrent("user-1")
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	repo := NewMemoryConversationRepo()
	_, err := repo.Create("conv-1", "")
	require.NoError(t, err)
	require.NoError(t, repo.Append("conv-1", msg(models.RoleUser, "original", time.Now())))

	conv, err := repo.Get("conv-1")
	require.NoError(t, err)
	conv.Messages[0].Text = "tampered"

	fresh, err := repo.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, "original", fresh.Messages[0].Text)
}
