// Package ideation generates, enhances, evaluates and refines creative
// brand ideas.
//
// Four built-in personas (aiden, maya, leo, zara) can frame generation
// so ideas arrive from distinct strategic perspectives; without personas
// a single direct generation runs. The model is asked for JSON arrays,
// and malformed output is repaired and retried before giving up.
// Sessions persist through a storage.SessionRepository so ideas can be
// reworked across calls.
package ideation
