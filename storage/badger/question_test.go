package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

func TestQuestionBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	q := &core.Question{
		SessionId:  "session-1",
		Query:      "What is our primary color?",
		Answer:     "Cobalt blue.",
		Confidence: 0.8,
		Provider:   "openai",
	}

	added, err := repos.Questions.AddQuestions(ctx, q)
	if err != nil {
		t.Fatalf("Failed to add question: %v", err)
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].AskedAt.IsZero() {
		t.Fatal("Expected AskedAt to be set")
	}

	retrieved, err := repos.Questions.GetQuestion(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get question: %v", err)
	}
	if retrieved.Answer != "Cobalt blue." {
		t.Fatalf("Expected 'Cobalt blue.', got '%s'", retrieved.Answer)
	}
}

func TestQuestionFeedbackUpdate(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	q := &core.Question{SessionId: "s", Query: "q", Answer: "a", Confidence: 0.5, Provider: "mock"}
	added, err := repos.Questions.AddQuestions(ctx, q)
	if err != nil {
		t.Fatalf("Failed to add question: %v", err)
	}

	added[0].HasFeedback = true
	added[0].Helpful = true
	added[0].Feedback = "spot on"

	_, err = repos.Questions.UpdateQuestions(ctx, added[0])
	if err != nil {
		t.Fatalf("Failed to update question: %v", err)
	}

	retrieved, err := repos.Questions.GetQuestion(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get question: %v", err)
	}
	if !retrieved.HasFeedback || !retrieved.Helpful {
		t.Fatal("Expected feedback flags to be set")
	}
	if retrieved.Feedback != "spot on" {
		t.Fatalf("Expected 'spot on', got '%s'", retrieved.Feedback)
	}
}

func TestGetRecentQuestions(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	questions := []*core.Question{
		{SessionId: "s1", Query: "first", Provider: "mock", AskedAt: now.Add(-3 * time.Hour)},
		{SessionId: "s2", Query: "second", Provider: "mock", AskedAt: now.Add(-2 * time.Hour)},
		{SessionId: "s1", Query: "third", Provider: "mock", AskedAt: now.Add(-1 * time.Hour)},
	}

	_, err = repos.Questions.AddQuestions(ctx, questions...)
	if err != nil {
		t.Fatalf("Failed to add questions: %v", err)
	}

	// Most recent first
	recent, err := repos.Questions.GetRecentQuestions(ctx, "", 0, 2)
	if err != nil {
		t.Fatalf("Failed to get recent questions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(recent))
	}
	if recent[0].Query != "third" {
		t.Fatalf("Expected 'third' first, got '%s'", recent[0].Query)
	}

	// Session filter
	s1, err := repos.Questions.GetRecentQuestions(ctx, "s1", 0, 0)
	if err != nil {
		t.Fatalf("Failed to get session questions: %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("Expected 2 questions for s1, got %d", len(s1))
	}
	for _, q := range s1 {
		if q.SessionId != "s1" {
			t.Fatalf("Expected session 's1', got '%s'", q.SessionId)
		}
	}
}

func TestQuestionDateRange(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	questions := []*core.Question{
		{SessionId: "s", Query: "old", Provider: "mock", AskedAt: now.Add(-2 * time.Hour)},
		{SessionId: "s", Query: "mid", Provider: "mock", AskedAt: now.Add(-1 * time.Hour)},
		{SessionId: "s", Query: "new", Provider: "mock", AskedAt: now},
	}

	_, err = repos.Questions.AddQuestions(ctx, questions...)
	if err != nil {
		t.Fatalf("Failed to add questions: %v", err)
	}

	results, err := repos.Questions.GetQuestionsByDateRange(ctx, now.Add(-90*time.Minute), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Failed to get questions by date range: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(results))
	}
}

func TestDeleteQuestion(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	q := &core.Question{SessionId: "s", Query: "temp", Provider: "mock"}
	added, err := repos.Questions.AddQuestions(ctx, q)
	if err != nil {
		t.Fatalf("Failed to add question: %v", err)
	}

	if err := repos.Questions.DeleteQuestion(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete question: %v", err)
	}

	_, err = repos.Questions.GetQuestion(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
