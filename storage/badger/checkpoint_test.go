package badger

import (
	"context"
	"testing"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

func TestCheckpointRoundTrip(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	// Missing checkpoint returns nil, nil
	cp, err := repos.Checkpoints.LoadCheckpoint(ctx, "reembed")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp != nil {
		t.Fatal("Expected nil checkpoint before save")
	}

	if err := repos.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{ProcessorType: "reembed", LastId: 42}); err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	cp, err = repos.Checkpoints.LoadCheckpoint(ctx, "reembed")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp == nil {
		t.Fatal("Expected checkpoint after save")
	}
	if cp.LastId != 42 {
		t.Fatalf("Expected LastId 42, got %d", cp.LastId)
	}
	if cp.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set")
	}

	// Overwrite advances the checkpoint
	if err := repos.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{ProcessorType: "reembed", LastId: 99}); err != nil {
		t.Fatalf("Failed to overwrite checkpoint: %v", err)
	}
	cp, err = repos.Checkpoints.LoadCheckpoint(ctx, "reembed")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp.LastId != 99 {
		t.Fatalf("Expected LastId 99, got %d", cp.LastId)
	}
}
