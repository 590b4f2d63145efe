// Package search retrieves document passages relevant to a query.
//
// The Searcher embeds the query, runs vector similarity search over
// stored chunks (optionally scoped to specific documents), clamps
// cosine scores to [0,1], boosts passages that contain every
// non-stopword query term, and returns the top results.
//
// A SearchMonitor can be supplied to observe each retrieval stage.
package search
