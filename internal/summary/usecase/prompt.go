package usecase

import "fmt"

// promptTemplate wraps the caller's instruction and the transcript. The rules
// are passed to the model as-is; nothing checks that the output obeys them.
const promptTemplate = `
You are an expert executive assistant. Follow the user's instruction exactly: "%s"

Rules:
- Follow the user's instruction precisely and provide appropriate detail level
- If they ask for "executive summary" or "bullet points for executives", provide comprehensive executive-level information with proper sections
- If they ask for specific items only (like "action items only"), provide ONLY those items
- If they ask for "brief" or "short", keep it concise
- Format in plain text (no asterisks or markdown symbols)
- Use numbered lists instead of bullet points
- Include relevant sections like Discussion Points, Decisions, Action Items, Next Steps when doing full summaries
- For action items, format as: "Person: Task description (Due: Date)" - always include the due date in parentheses
- If no specific deadline is mentioned, use "Due: TBD"

Transcript:
%s
`

// BuildPrompt embeds instruction and transcript verbatim into the fixed template.
func BuildPrompt(instruction, transcript string) string {
	return fmt.Sprintf(promptTemplate, instruction, transcript)
}
