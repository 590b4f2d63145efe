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


package badger

import "github.com/tom2tomtomtom/playbookwiz/storage"

// Repositories bundles all repositories backed by a single Backend.
// Caller must Close when done.
type Repositories struct {
	Documents   storage.DocumentRepository
	Chunks      storage.ChunkRepository
	Questions   storage.QuestionRepository
	Sessions    storage.SessionRepository
	Checkpoints storage.CheckpointRepository

	backend *Backend
}

// NewRepositories creates all repositories over an open backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	docRepo, err := NewDocumentRepository(backend)
	if err != nil {
		return nil, err
	}

	chunkRepo, err := NewChunkRepository(backend)
	if err != nil {
		docRepo.Close()
		return nil, err
	}

	questionRepo, err := NewQuestionRepository(backend)
	if err != nil {
		chunkRepo.Close()
		docRepo.Close()
		return nil, err
	}

	sessionRepo, err := NewSessionRepository(backend)
	if err != nil {
		questionRepo.Close()
		chunkRepo.Close()
		docRepo.Close()
		return nil, err
	}

	return &Repositories{
		Documents:   docRepo,
		Chunks:      chunkRepo,
		Questions:   questionRepo,
		Sessions:    sessionRepo,
		Checkpoints: NewCheckpointRepository(backend),
		backend:     backend,
	}, nil
}

// Close releases all repositories and the backend.
func (r *Repositories) Close() error {
	r.Documents.Close()
	r.Chunks.Close()
	r.Questions.Close()
	r.Sessions.Close()
	return r.backend.Close()
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must close the returned Repositories when done.
func NewMemoryRepositories() (*Repositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	repos, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return repos, nil
}
