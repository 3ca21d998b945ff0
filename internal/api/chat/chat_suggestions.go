package chat

import (
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/keyword"
)

// maxSuggestions caps the follow-up prompts returned with a chat reply.
const maxSuggestions = 3

var followUps = keyword.Table[[]string]{
	Rules: []keyword.Rule[[]string]{
		{
			Name:     "budget",
			Keywords: []string{"budget"},
			Response: []string{
				"Show me vendors within my budget",
				"Help me allocate my wedding budget",
				"What can I get for my budget?",
			},
		},
		{
			Name:     "venue",
			Keywords: []string{"venue"},
			Response: []string{
				"Show me venues in my area",
				"What's the average venue cost?",
				"Outdoor vs indoor venue options",
			},
		},
		{
			Name:     "photography",
			Keywords: []string{"photograph"},
			Response: []string{
				"Find photographers in my budget",
				"Traditional vs candid photography",
				"Pre-wedding shoot packages",
			},
		},
	},
	Default: []string{
		"Create my wedding timeline",
		"Show me vendor recommendations",
		"Help with budget planning",
		"What should I book first?",
	},
}

// Suggestions returns up to three follow-up prompts for the raw user message.
func Suggestions(message string) []string {
	list, _, _ := followUps.Match(message)
	if len(list) > maxSuggestions {
		list = list[:maxSuggestions]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
