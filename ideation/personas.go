package ideation

import "fmt"

// Persona is a creative character that frames idea generation.
type Persona struct {
	Key         string
	Name        string
	Role        string
	Personality string
	Expertise   string
	Approach    string
}

// personas are the built-in creative personas, keyed by their short name.
var personas = map[string]Persona{
	"aiden": {
		Key:         "aiden",
		Name:        "Aiden",
		Role:        "Strategic Brand Visionary",
		Personality: "Analytical, forward-thinking, and philosophically inclined",
		Expertise:   "Brand strategy, market positioning, cultural trends",
		Approach:    "Combines deep analysis with creative intuition",
	},
	"maya": {
		Key:         "maya",
		Name:        "Maya",
		Role:        "Creative Innovation Catalyst",
		Personality: "Imaginative, empathetic, and culturally aware",
		Expertise:   "Creative campaigns, storytelling, audience connection",
		Approach:    "Human-centered design with emotional resonance",
	},
	"leo": {
		Key:         "leo",
		Name:        "Leo",
		Role:        "Data-Driven Strategist",
		Personality: "Logical, methodical, and insight-focused",
		Expertise:   "Market research, competitive analysis, performance metrics",
		Approach:    "Evidence-based recommendations with clear rationale",
	},
	"zara": {
		Key:         "zara",
		Name:        "Zara",
		Role:        "Disruptive Innovation Expert",
		Personality: "Bold, unconventional, and trend-setting",
		Expertise:   "Emerging technologies, cultural shifts, breakthrough ideas",
		Approach:    "Challenges assumptions and explores new possibilities",
	},
}

// personaOrder fixes the listing order of the built-in personas.
var personaOrder = []string{"aiden", "maya", "leo", "zara"}

// Personas returns the built-in personas in a stable order.
func Personas() []Persona {
	result := make([]Persona, 0, len(personaOrder))
	for _, key := range personaOrder {
		result = append(result, personas[key])
	}
	return result
}

// LookupPersona finds a persona by key.
func LookupPersona(key string) (Persona, error) {
	p, ok := personas[key]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %q", ErrUnknownPersona, key)
	}
	return p, nil
}

// resolvePersonas validates a list of persona keys.
func resolvePersonas(keys []string) ([]Persona, error) {
	resolved := make([]Persona, 0, len(keys))
	for _, key := range keys {
		p, err := LookupPersona(key)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}
