// Package analysis surfaces competitor presence and market
// opportunities from ingested document text.
//
// Both analyses are deliberately lexical. Competitor analysis counts
// case-insensitive name mentions with a context snippet around the
// first hit; opportunity analysis picks out sentences mentioning
// opportunity-related keywords. No provider calls are made.
package analysis
