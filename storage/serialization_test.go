package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tom2tomtomtom/playbookwiz/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	uploaded := time.Now().UTC().Truncate(time.Microsecond)
	doc := &core.Document{
		Id:         7,
		Name:       "brand-guidelines.pdf",
		Kind:       core.FileKindPDF,
		Status:     core.StatusCompleted,
		SizeBytes:  123456,
		PageCount:  12,
		ChunkCount: 31,
		Brand: core.BrandElements{
			Colors:        []string{"#FF5733", "rgb(10,20,30)"},
			KeywordCounts: map[string]int{"logo": 4, "tagline": 1},
		},
		UploadedAt:  uploaded,
		ProcessedAt: uploaded.Add(2 * time.Second),
		UpdatedAt:   uploaded.Add(2 * time.Second),
		Metadata:    map[string]string{"content_type": "application/pdf"},
	}

	data := MarshalDocument(doc)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Id, decoded.Id)
	assert.Equal(t, doc.Name, decoded.Name)
	assert.Equal(t, doc.Kind, decoded.Kind)
	assert.Equal(t, doc.Status, decoded.Status)
	assert.Equal(t, doc.PageCount, decoded.PageCount)
	assert.Equal(t, doc.Brand.Colors, decoded.Brand.Colors)
	assert.Equal(t, doc.Brand.KeywordCounts, decoded.Brand.KeywordCounts)
	assert.True(t, doc.UploadedAt.Equal(decoded.UploadedAt))
	assert.Equal(t, doc.Metadata, decoded.Metadata)
}

func TestMarshalUnmarshalChunk(t *testing.T) {
	inserted := time.Now().UTC().Truncate(time.Microsecond)
	chunk := &core.Chunk{
		Id:           core.ChunkID(7, 3),
		DocumentId:   7,
		DocumentName: "brand-guidelines.pdf",
		PageNumber:   4,
		ChunkIndex:   3,
		Contents:     "Primary palette: #0047AB on white.",
		TokenCount:   6,
		Vector:       []float32{0.25, -0.5, 0.125},
		InsertedAt:   inserted,
		UpdatedAt:    inserted,
	}

	data := MarshalChunk(chunk)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalChunk(data)
	require.NoError(t, err)
	assert.Equal(t, chunk.Id, decoded.Id)
	assert.Equal(t, chunk.DocumentId, decoded.DocumentId)
	assert.Equal(t, chunk.PageNumber, decoded.PageNumber)
	assert.Equal(t, chunk.Contents, decoded.Contents)
	assert.Equal(t, chunk.Vector, decoded.Vector)
	assert.True(t, chunk.InsertedAt.Equal(decoded.InsertedAt))
}

func TestMarshalUnmarshalQuestion(t *testing.T) {
	asked := time.Now().UTC().Truncate(time.Microsecond)
	q := &core.Question{
		Id:         11,
		SessionId:  "0b6f3a1e-session",
		Query:      "What is our primary color?",
		Answer:     "The primary color is #0047AB.",
		Confidence: 0.82,
		Provider:   "openai",
		Sources: []core.SourceRef{
			{
				ChunkId:      core.ChunkID(7, 3),
				DocumentId:   7,
				DocumentName: "brand-guidelines.pdf",
				PageNumber:   4,
				Relevance:    0.91,
				Excerpt:      "Primary palette: #0047AB on white.",
			},
		},
		AskedAt:   asked,
		UpdatedAt: asked,
	}

	data := MarshalQuestion(q)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalQuestion(data)
	require.NoError(t, err)
	assert.Equal(t, q.Query, decoded.Query)
	assert.Equal(t, q.Answer, decoded.Answer)
	assert.Equal(t, q.Provider, decoded.Provider)
	require.Len(t, decoded.Sources, 1)
	assert.Equal(t, q.Sources[0].DocumentName, decoded.Sources[0].DocumentName)
	assert.Equal(t, q.Sources[0].Relevance, decoded.Sources[0].Relevance)
}

func TestMarshalUnmarshalSession(t *testing.T) {
	created := time.Now().UTC().Truncate(time.Microsecond)
	s := &core.IdeationSession{
		Id:       3,
		Topic:    "summer launch campaign",
		Personas: []string{"maya", "zara"},
		Ideas: []core.Idea{
			{Title: "Neon Nights", Description: "Pop-up events after dark.", Persona: "zara"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	data := MarshalSession(s)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, s.Topic, decoded.Topic)
	assert.Equal(t, s.Personas, decoded.Personas)
	require.Len(t, decoded.Ideas, 1)
	assert.Equal(t, s.Ideas[0], decoded.Ideas[0])
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	cp := &core.Checkpoint{
		ProcessorType: "ingest",
		LastId:        99,
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	data := MarshalCheckpoint(cp)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, cp.ProcessorType, decoded.ProcessorType)
	assert.Equal(t, cp.LastId, decoded.LastId)
}
