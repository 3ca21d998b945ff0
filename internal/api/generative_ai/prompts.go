package generativeAI

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

const plannerSystemPrompt = `You are an expert AI Wedding Planner assistant for a premium wedding services platform. Your role is to help couples plan their perfect wedding within their budget and preferences.

Your capabilities:
1. Wedding Planning: Budget allocation, timeline creation, vendor recommendations
2. Style Consultation: Traditional Indian, Modern, Fusion wedding styles
3. Vendor Matching: Match couples with the best vendors based on their needs
4. Cost Estimation: Provide accurate pricing predictions for different services
5. Timeline Management: Create detailed wedding planning schedules

User Context: %s

Guidelines:
- Always ask about budget, guest count, preferred date, and style preference early
- Provide specific vendor recommendations based on location and budget
- Break down costs clearly with realistic pricing
- Suggest timeline milestones for wedding planning
- Be enthusiastic and supportive while being practical
- Focus on the zero-commission advantage of this platform
- Ask clarifying questions to understand their vision better

Respond in a helpful, warm, and professional tone. Always end with a specific question or suggestion for next steps.`

const rankerSystemPrompt = "You are an AI vendor ranking system. Rank vendors based on user preferences and provide personalized recommendations."

// PlannerSystemPrompt renders the chat system prompt with a snapshot of the
// user's preferences.
func PlannerSystemPrompt(prefs types.Preferences) string {
	return fmt.Sprintf(plannerSystemPrompt, describePreferences(prefs))
}

// RankerSystemPrompt is the system prompt for recommendation ranking.
func RankerSystemPrompt() string {
	return rankerSystemPrompt
}

// maxDescriptionRunes caps each vendor description in the ranking prompt.
const maxDescriptionRunes = 200

// RankingPrompt asks the model to rank vendors for the given preferences.
func RankingPrompt(prefs types.Preferences, vendors []types.Vendor) string {
	var b strings.Builder
	b.WriteString("Rank these vendors for a wedding with:\n")
	fmt.Fprintf(&b, "Budget: ₹%.0f\n", prefs.Budget)
	fmt.Fprintf(&b, "Location: %s\n", prefs.Location)
	fmt.Fprintf(&b, "Style: %s\n", prefs.StylePreference)
	fmt.Fprintf(&b, "Guest Count: %d\n\nVendors:\n", prefs.GuestCount)
	for i, v := range vendors {
		desc := truncateRunes(v.Description, maxDescriptionRunes)
		fmt.Fprintf(&b, "%d. %s (%s, %s) pricing %.0f-%.0f, rating %.1f: %s\n",
			i+1, v.BusinessName, v.Category, v.Location, v.PricingRange.Min, v.PricingRange.Max, v.Rating, desc)
	}
	b.WriteString("\nProvide a ranked recommendation with brief reasons.")
	return b.String()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// WithMarketInfo splices canned market information into the user message.
func WithMarketInfo(message, marketInfo string) string {
	if marketInfo == "" {
		return message
	}
	return fmt.Sprintf("%s\n\nCurrent market information:\n%s", message, marketInfo)
}

func describePreferences(p types.Preferences) string {
	var parts []string
	if p.Budget > 0 {
		parts = append(parts, fmt.Sprintf("budget ₹%.0f", p.Budget))
	}
	if p.GuestCount > 0 {
		parts = append(parts, fmt.Sprintf("%d guests", p.GuestCount))
	}
	if p.Location != "" {
		parts = append(parts, "location "+p.Location)
	}
	if p.StylePreference != types.StyleUnspecified {
		parts = append(parts, string(p.StylePreference)+" style")
	}
	if p.WeddingDate != nil {
		parts = append(parts, "wedding date "+p.WeddingDate.Format("2006-01-02"))
	}
	if len(parts) == 0 {
		return "New conversation"
	}
	return strings.Join(parts, ", ")
}
