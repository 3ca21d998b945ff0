package market

import (
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/keyword"
)

// marketQueryTriggers decide whether a chat message asks about prices or
// trends and should get market information spliced in. They match whole
// words only.
var marketQueryTriggers = []string{
	"price", "cost", "budget", "rate", "trend", "market", "latest", "current",
	"how much", "average", "expensive", "cheap",
}

// marketInfo is a fixed table of market summaries. It stands in for a live
// retrieval source and returns the same paragraph for every matching query.
var marketInfo = keyword.Table[string]{
	Rules: []keyword.Rule[string]{
		{
			Name:     "photography",
			Keywords: []string{"photograph"},
			Response: "Wedding photography in major Indian cities currently ranges from ₹50,000 to ₹3,00,000. " +
				"Candid and cinematic packages are the most requested, and pre-wedding shoots usually add ₹25,000 to ₹75,000. " +
				"Top photographers are booked 6 to 9 months ahead for the November to February season.",
		},
		{
			Name:     "catering",
			Keywords: []string{"cater", "food", "menu"},
			Response: "Wedding catering is priced per plate, typically ₹800 to ₹2,500 for vegetarian menus and ₹1,200 to ₹3,500 with non-vegetarian options. " +
				"Live counters and regional specialities are trending, and most caterers require a final guest count two weeks before the event.",
		},
		{
			Name:     "venue",
			Keywords: []string{"venue", "hall", "banquet"},
			Response: "Banquet halls cost ₹2,00,000 to ₹8,00,000 per day in metro cities, while destination and palace venues start around ₹10,00,000. " +
				"Weekday and off-season dates are often 20 to 30 percent cheaper, and popular venues are reserved a year in advance.",
		},
		{
			Name:     "decoration",
			Keywords: []string{"decor", "flower", "floral"},
			Response: "Wedding decoration budgets usually fall between ₹1,00,000 and ₹5,00,000 depending on floral choices and stage design. " +
				"Fresh-flower mandaps and pastel themes are popular this season; imported flowers can double the floral cost.",
		},
		{
			Name:     "music",
			Keywords: []string{"music", "dj", "band"},
			Response: "DJs charge ₹25,000 to ₹1,00,000 per event and live bands ₹75,000 to ₹3,00,000. " +
				"Sangeet nights with choreographers are trending, and sound and lighting are often quoted separately.",
		},
		{
			Name:     "bridal_beauty",
			Keywords: []string{"makeup", "mehendi", "bridal"},
			Response: "Bridal makeup artists charge ₹15,000 to ₹1,00,000 for the wedding day, with airbrush looks at the upper end. " +
				"Mehendi artists price by design complexity, typically ₹5,000 to ₹50,000 for the bride.",
		},
	},
	Default: "The Indian wedding market is seeing steady demand with average wedding budgets between ₹10,00,000 and ₹30,00,000. " +
		"Couples are prioritising experiences and personalised decor, and booking key vendors 6 to 12 months ahead secures better rates.",
}

// IsMarketQuery reports whether message asks about prices, costs or trends.
func IsMarketQuery(message string) bool {
	return keyword.ContainsWord(message, marketQueryTriggers)
}

// Lookup returns the canned market summary for query and the name of the
// rule that produced it ("" for the general summary).
func Lookup(query string) (string, string) {
	info, topic, _ := marketInfo.Match(query)
	return info, topic
}
