package quote

import (
	"fmt"
	"strings"

	"github.com/sparkquote/estimator-backend/internal/entity"
)

// clarifyPrompt asks the model for multiple-choice clarifying questions about
// an electrical job. The fixed topics steer the model toward the details that
// move a quote the most.
func clarifyPrompt(description string, maxQuestions int) string {
	return fmt.Sprintf(`The user wants a quote for electrical work in England under BS7671 regulations based on this description: "%s".

Ask only as many multiple-choice questions as you need for an accurate quote, up to %d. Each question should have 3-5 options.
Prioritise these topics where they are not already answered by the description:
- cable run length
- installation method (chased, surface trunking, under floorboards)
- property type
- new installation vs replacement of existing fittings
- expected structural disruption (lifting floors, chasing walls)
- whether the consumer unit needs work

Assume the electrician owns standard tools and works to current regulations; do not ask about either.

Respond with a single JSON object in exactly this shape and nothing else:
{
  "questions": [
    { "question": "What type of socket?", "options": ["MK Logic Plus Double Socket", "BG Nexus USB Double Socket", "Hager Sollysta 13A Socket"] }
  ]
}`, description, maxQuestions)
}

// estimatePrompt asks the model for the full priced breakdown given the
// description and the answered clarifying questions.
func estimatePrompt(description string, answers []entity.Answer) string {
	var transcript strings.Builder
	for _, a := range answers {
		transcript.WriteString(a.Question)
		transcript.WriteString(": ")
		transcript.WriteString(a.Answer)
		transcript.WriteString("\n")
	}

	return fmt.Sprintf(`The user described this electrical work for an installation in England following BS7671: "%s".
They answered these clarifying questions:
%s
Break the work down into discrete jobs. For each job give:
- "job": a short name for the task
- "confidence": "High", "Medium" or "Low" - how certain you are of the time estimate
- "timeRange": {"min", "max"} estimated hours
- "materials": every primary material with brand and size level specificity (exact socket/switch/lighting models, exact cable types and lengths, backboxes, conduit), each with a "priceRange" {"min", "max"} in GBP

Do not itemise tool costs (assume the electrician owns standard tools) or minor fixings such as screws and wall plugs; treat those as part of labour.

Respond with a single JSON object in exactly this shape and nothing else:
{
  "jobs": [
    {
      "job": "Install MK Logic Plus Double Socket",
      "confidence": "Medium",
      "timeRange": {"min": 1, "max": 1.5},
      "materials": [
        {"name": "1x MK Logic Plus 13A Double Socket (K2747WHI)", "priceRange": {"min": 8.5, "max": 12}}
      ]
    }
  ]
}`, description, transcript.String())
}
