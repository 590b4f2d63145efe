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

package ideation

import "errors"

var (
	// ErrSessionRepositoryRequired is returned when a session repository is not provided.
	ErrSessionRepositoryRequired = errors.New("session repository required")

	// ErrGeneratorRequired is returned when a text generator is not provided.
	ErrGeneratorRequired = errors.New("generator required")

	// ErrEmptyTopic is returned when the ideation topic is blank.
	ErrEmptyTopic = errors.New("topic must not be empty")

	// ErrUnknownPersona is returned for an unrecognized persona key.
	ErrUnknownPersona = errors.New("unknown persona")

	// ErrInvalidEnhancement is returned for an unrecognized enhancement type.
	ErrInvalidEnhancement = errors.New("invalid enhancement type")

	// ErrInvalidRefinement is returned for an unrecognized refinement direction.
	ErrInvalidRefinement = errors.New("invalid refinement direction")

	// ErrInvalidCriterion is returned for an unrecognized evaluation criterion.
	ErrInvalidCriterion = errors.New("invalid evaluation criterion")

	// ErrNoIdeasSelected is returned when refinement selects no valid ideas.
	ErrNoIdeasSelected = errors.New("no ideas selected")
)
