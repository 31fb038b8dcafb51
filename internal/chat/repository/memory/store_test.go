package memory

import (
	"sync"
	"testing"
	"time"

	"arkive-client/internal/chat/repository"
	"arkive-client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsOrder(t *testing.T) {
	s := New()
	now := time.Now()

	require.NoError(t, s.Append(model.NewUserMessage("hi", now)))
	require.NoError(t, s.Append(model.NewAssistantNotice("hello", now)))

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, model.RoleUser, got[0].Role)
	assert.Equal(t, model.RoleAssistant, got[1].Role)
	assert.Equal(t, 2, s.Len())
}

func TestAppendRejectsUnknownRole(t *testing.T) {
	s := New()
	err := s.Append(model.Message{Role: "system", Content: "x"})
	assert.ErrorIs(t, err, repository.ErrInvalidRole)
	assert.Zero(t, s.Len())
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	msg := model.NewAssistantNotice("answer", time.Now())
	msg.Sources = []model.Source{{Name: "policy.pdf", Page: 3}}
	require.NoError(t, s.Append(msg))

	got := s.List()
	got[0].Content = "changed"
	got[0].Sources[0].Name = "other.pdf"

	again := s.List()
	assert.Equal(t, "answer", again[0].Content)
	assert.Equal(t, "policy.pdf", again[0].Sources[0].Name)
}

func TestReplaceAllAndReset(t *testing.T) {
	s := New()
	now := time.Now()
	require.NoError(t, s.Append(model.NewUserMessage("old", now)))

	history := []model.Message{
		model.NewUserMessage("q1", now),
		model.NewAssistantNotice("a1", now),
		model.NewUserMessage("q2", now),
	}
	require.NoError(t, s.ReplaceAll(history))
	assert.Equal(t, history, s.List())

	err := s.ReplaceAll([]model.Message{{Role: "bot"}})
	assert.ErrorIs(t, err, repository.ErrInvalidRole)
	assert.Equal(t, 3, s.Len(), "failed replace leaves transcript untouched")

	welcome := model.NewAssistantNotice("Welcome", now)
	require.NoError(t, s.Reset(welcome))
	assert.Equal(t, []model.Message{welcome}, s.List())
}

func TestConcurrentReaders(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.List()
				_ = s.Len()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Append(model.NewUserMessage("q", time.Now())))
	}
	wg.Wait()
	assert.Equal(t, 100, s.Len())
}
