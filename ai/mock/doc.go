// Package mock provides test doubles for the ai package interfaces.
//
// The mocks are deterministic by default: MockEmbedder derives vectors
// from an FNV hash of the input text and MockGenerator echoes the prompt.
// Tests can override behavior through function fields or script responses
// through the MockGenerator.Responses queue.
package mock
