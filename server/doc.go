// Package server exposes the PlaybookWiz HTTP API over gin: document
// upload and management, question answering with source attribution,
// persona-driven ideation, and document analysis.
//
// All endpoints live under /api/v1 except the health and stats probes.
// Errors are returned as a JSON envelope with a message and a short
// machine-readable code.
package server
