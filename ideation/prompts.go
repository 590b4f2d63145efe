package ideation

import (
	"fmt"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// ideationSystemPrompt asks for strict JSON so responses can be parsed.
const ideationSystemPrompt = `You are a creative brand strategist. Always respond with a JSON array only, no prose before or after. Each element must be an object with "title" and "description" string fields.`

// evaluationSystemPrompt asks for structured idea scores.
const evaluationSystemPrompt = `You are a rigorous brand consultant scoring creative ideas. Always respond with a JSON array only. Each element must be an object with "idea_index" (0-based integer), "scores" (object mapping criterion name to an integer 1-10) and "comments" (string).`

// enhancementInstructions maps enhancement types to prompt directives.
var enhancementInstructions = map[string]string{
	"emotional_depth":    "Add emotional resonance",
	"pattern_breaking":   "Subvert expectations",
	"philosophical":      "Add philosophical depth",
	"cultural_relevance": "Enhance cultural connections",
}

// refinementInstructions maps refinement directions to prompt directives.
var refinementInstructions = map[string]string{
	"more_specific":   "Make ideas more concrete and actionable",
	"broader_scope":   "Expand the scope and applications",
	"different_angle": "Explore from a different perspective",
	"combine":         "Combine multiple ideas into hybrid concepts",
}

// evaluationCriteria maps criterion names to what the score measures.
var evaluationCriteria = map[string]string{
	"brand_alignment": "How well does it align with brand guidelines?",
	"feasibility":     "How practical is implementation?",
	"innovation":      "How novel and creative is the idea?",
	"impact":          "What's the potential business impact?",
	"audience_appeal": "How appealing is it to the target audience?",
}

// defaultCriteria fixes the order criteria appear in prompts.
var defaultCriteria = []string{"brand_alignment", "feasibility", "innovation", "impact", "audience_appeal"}

// personaFraming introduces the persona voice for generation prompts.
func personaFraming(p Persona) string {
	return fmt.Sprintf("You are %s, a %s. Personality: %s. Expertise: %s. Approach: %s.",
		p.Name, p.Role, p.Personality, p.Expertise, p.Approach)
}

// buildGeneratePrompt asks for count ideas on a topic, optionally framed
// by a persona and grounded in brand context.
func buildGeneratePrompt(topic, context string, persona *Persona, count int) string {
	var b strings.Builder

	if persona != nil {
		b.WriteString(personaFraming(*persona))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Generate %d creative brand ideas for the following topic:\n\nTopic: %s\n", count, topic)

	if context != "" {
		fmt.Fprintf(&b, "\nBrand context:\n%s\n", context)
	}

	b.WriteString(`
Return a JSON array of idea objects, each with a short "title" and a concrete "description".`)
	return b.String()
}

// buildEnhancePrompt asks for enhanced versions of existing ideas.
func buildEnhancePrompt(ideas []core.Idea, instruction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enhance the following ideas. Directive: %s.\n\n", instruction)
	writeIdeaList(&b, ideas)
	b.WriteString("\nReturn the same number of ideas as a JSON array of objects with \"title\" and \"description\", in the same order, each enhanced per the directive.")
	return b.String()
}

// buildEvaluatePrompt asks for scores on each criterion.
func buildEvaluatePrompt(ideas []core.Idea, criteria []string) string {
	var b strings.Builder
	b.WriteString("Evaluate the following ideas against each criterion, scoring 1-10:\n\n")
	for _, criterion := range criteria {
		fmt.Fprintf(&b, "- %s: %s\n", criterion, evaluationCriteria[criterion])
	}
	b.WriteString("\n")
	writeIdeaList(&b, ideas)
	b.WriteString("\nReturn a JSON array with one evaluation object per idea.")
	return b.String()
}

// buildRefinePrompt asks for refined versions of selected ideas.
func buildRefinePrompt(ideas []core.Idea, instruction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Refine the following ideas. Directive: %s.\n\n", instruction)
	writeIdeaList(&b, ideas)
	b.WriteString("\nReturn the refined ideas as a JSON array of objects with \"title\" and \"description\".")
	return b.String()
}

// buildDialoguePrompt stages a conversation between personas on a topic.
func buildDialoguePrompt(topic, context string, participants []Persona) string {
	var b strings.Builder
	b.WriteString("Write a short creative dialogue between the following brand experts exploring the topic from their distinct perspectives.\n\nParticipants:\n")
	for _, p := range participants {
		fmt.Fprintf(&b, "- %s (%s): %s. Expertise: %s.\n", p.Name, p.Role, p.Personality, p.Expertise)
	}
	fmt.Fprintf(&b, "\nTopic: %s\n", topic)
	if context != "" {
		fmt.Fprintf(&b, "\nBrand context:\n%s\n", context)
	}
	b.WriteString("\nEach participant should speak at least twice. End with one shared insight.")
	return b.String()
}

// writeIdeaList renders ideas as a numbered list for prompts.
func writeIdeaList(b *strings.Builder, ideas []core.Idea) {
	b.WriteString("Ideas:\n")
	for i, idea := range ideas {
		fmt.Fprintf(b, "%d. %s: %s\n", i+1, idea.Title, idea.Description)
	}
}
