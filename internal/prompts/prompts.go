package prompts

import "fmt"

// queryGenerationTemplate instructs the model to emit a pure JSON array of
// search queries. The "no markdown" rule matters: models routinely wrap JSON
// in code fences, and the parser only strips fences as a fallback.
const queryGenerationTemplate = `You are a job search expert. Generate %d diverse, effective Google search queries for job listings based on the user's description.

Rules:
1. Make queries specific and actionable
2. Include relevant job titles, skills, and keywords
3. Vary the approach (e.g., "software engineer jobs", "hiring developers", "react developer positions")
4. Return ONLY a JSON array of objects with this structure: [{"id": "1", "query": "search query here", "category": "optional category"}]
5. No markdown formatting, just pure JSON

User prompt: %s`

// QueryGeneration builds the prompt asking for n search queries derived from
// the user's free-text job description.
func QueryGeneration(description string, n int) string {
	return fmt.Sprintf(queryGenerationTemplate, n, description)
}
