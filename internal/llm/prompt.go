package llm

import (
	"strings"

	"github.com/teizred/web-speech-api/internal/catalog"
)

// BuildTranscriptPrompt turns a spoken French transcript into an
// extraction instruction. The full catalog is embedded so the model
// answers with exact product names; anything else is dropped server-side.
func BuildTranscriptPrompt(transcript string) string {
	return `
You are a data extraction engine for a McDonald's loss-tracking tool.

The operator dictates lost products in French. Your task:
- Convert the transcript into STRICT JSON.
- Output MUST be a valid JSON array.
- Output MUST start with [ and end with ].
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.

If you cannot extract anything, return this exact JSON:
[]

Required JSON schema:
[
  {
    "product": "string (EXACT name from the product list below)",
    "quantity": number,
    "size": "Petit" | "Moyen" | "Grand" | null
  }
]

Rules:
- "product" MUST be copied character-for-character from the product list.
- French number words are quantities ("deux big mac" => quantity 2).
- Mentioned sizes map to "Petit", "Moyen" or "Grand" ("moyen", "medium" => "Moyen").
- If no size is mentioned, use null.
- One array entry per distinct product in the transcript.

Product list:
` + strings.Join(catalog.AllProductNames(), "\n") + `

TRANSCRIPT:
` + transcript
}
