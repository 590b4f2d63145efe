// Package answer turns retrieved playbook passages into cited,
// confidence-scored answers.
//
// The Answerer searches for relevant chunks, builds a prompt from the
// top passages ("Source N (from NAME, page P)"), and asks the configured
// generator, which is usually a fallback chain across providers. Every
// exchange is persisted as a core.Question so callers can list history
// and attach feedback.
package answer
