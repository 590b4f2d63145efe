// Copyright 2025 PlaybookWiz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/document"
)

const (
	defaultMaxTokens        = 500
	defaultOverlap          = 50
	defaultSentenceLookback = 200
)

// Chunker splits page-attributed text into overlapping chunks sized for
// embedding. Tokens are whitespace-delimited words. When a chunk would
// cut mid-sentence, the boundary scans back to the nearest sentence end
// within the lookback window.
type Chunker struct {
	maxTokens        int
	overlap          int
	sentenceLookback int
}

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker)

// WithMaxTokens sets the maximum tokens per chunk. Default: 500
func WithMaxTokens(maxTokens int) ChunkerOption {
	return func(c *Chunker) {
		if maxTokens > 0 {
			c.maxTokens = maxTokens
		}
	}
}

// WithOverlap sets the token overlap between consecutive chunks. Default: 50
func WithOverlap(overlap int) ChunkerOption {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// NewChunker creates a chunker with default limits.
func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		maxTokens:        defaultMaxTokens,
		overlap:          defaultOverlap,
		sentenceLookback: defaultSentenceLookback,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.overlap >= c.maxTokens {
		c.overlap = c.maxTokens / 2
	}
	return c
}

// ChunkPages splits extracted pages into chunks for a document.
// Chunk indexes are global across the document; page numbers follow the
// page each chunk starts on.
func (c *Chunker) ChunkPages(documentID core.ID, documentName string, pages []document.Page) []*core.Chunk {
	var chunks []*core.Chunk
	index := 0

	for _, page := range pages {
		tokens := strings.Fields(page.Text)
		if len(tokens) == 0 {
			continue
		}

		start := 0
		for start < len(tokens) {
			end := start + c.maxTokens
			if end >= len(tokens) {
				end = len(tokens)
			} else {
				end = c.scanBackToSentence(tokens, start, end)
			}

			contents := strings.Join(tokens[start:end], " ")
			chunks = append(chunks, &core.Chunk{
				DocumentId:   documentID,
				DocumentName: documentName,
				PageNumber:   page.Number,
				ChunkIndex:   index,
				Contents:     contents,
				TokenCount:   end - start,
			})
			index++

			if end >= len(tokens) {
				break
			}

			// Overlap the tail of this chunk into the next one
			next := end - c.overlap
			if next <= start {
				next = end
			}
			start = next
		}
	}

	return chunks
}

// scanBackToSentence moves the chunk boundary back to just after the
// nearest sentence-ending token within the lookback window. Returns the
// original end when no sentence boundary is found.
func (c *Chunker) scanBackToSentence(tokens []string, start, end int) int {
	limit := end - c.sentenceLookback
	if limit < start+1 {
		limit = start + 1
	}
	for i := end - 1; i >= limit; i-- {
		if endsSentence(tokens[i]) {
			return i + 1
		}
	}
	return end
}

// endsSentence reports whether a token ends with sentence punctuation,
// allowing for trailing quotes or brackets.
func endsSentence(token string) bool {
	token = strings.TrimRight(token, `"')]`)
	return strings.HasSuffix(token, ".") ||
		strings.HasSuffix(token, "!") ||
		strings.HasSuffix(token, "?")
}
