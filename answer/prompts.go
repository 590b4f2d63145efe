package answer

import (
	"fmt"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// systemPrompt frames the model as a brand expert that stays within the
// retrieved playbook content.
const systemPrompt = `You are a helpful brand expert assistant. Answer questions based ONLY on the provided brand playbook content.

Rules:
1. Use only information from the provided sources
2. Be specific and accurate
3. If information isn't in the sources, say so
4. Reference specific sources when possible
5. Keep answers concise but complete`

// noInformationAnswer is returned without calling a provider when
// retrieval produces no passages.
const noInformationAnswer = "I couldn't find any relevant information in your uploaded brand playbooks to answer this question. Please make sure you have uploaded your brand documents first."

// maxContextPassages bounds how many retrieved passages go into the prompt.
const maxContextPassages = 3

// buildUserPrompt formats the top passages into a context block followed
// by the question.
func buildUserPrompt(query string, results []*core.SearchResult) string {
	passages := results
	if len(passages) > maxContextPassages {
		passages = passages[:maxContextPassages]
	}

	var context strings.Builder
	for i, result := range passages {
		fmt.Fprintf(&context, "Source %d (from %s, page %d):\n%s\n\n",
			i+1, result.Chunk.DocumentName, result.Chunk.PageNumber, result.Chunk.Contents)
	}

	return fmt.Sprintf(`Context from brand playbooks:
%s
Question: %s

Please provide a helpful answer based on the brand playbook information above.`, context.String(), query)
}

// defaultSuggestions are starter questions offered before any history exists.
var defaultSuggestions = []string{
	"What are our primary brand colors?",
	"How should the logo be used?",
	"What is our brand voice and tone?",
	"What typography does the brand use?",
	"Who is our target audience?",
	"What are the brand's core values?",
}
