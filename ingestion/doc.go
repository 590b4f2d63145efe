// Package ingestion turns uploaded playbook files into embedded,
// searchable chunks.
//
// The Pipeline registers a document immediately and performs the heavy
// work (text extraction, chunking, embedding) on an ants worker pool.
// Document status moves pending -> processing -> completed, or failed
// with the error recorded on the document.
//
// The Chunker produces overlapping word-token chunks with sentence-aware
// boundaries so embeddings don't cut thoughts in half. Each chunk keeps
// the page number it starts on for source citations.
package ingestion
