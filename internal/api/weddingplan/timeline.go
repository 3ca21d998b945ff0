package weddingplan

import (
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var planningMilestones = []struct {
	bucket string
	tasks  []string
}{
	{"12_months_before", []string{"Book venue", "Set budget", "Create guest list"}},
	{"8_months_before", []string{"Book photographer", "Book caterer", "Send save the dates"}},
	{"6_months_before", []string{"Book decorator", "Plan honeymoon", "Buy wedding outfits"}},
	{"3_months_before", []string{"Send invitations", "Final guest count", "Menu tasting"}},
	{"1_month_before", []string{"Final fittings", "Rehearsal", "Confirm all vendors"}},
	{"1_week_before", []string{"Pack for honeymoon", "Final payments", "Relax and enjoy!"}},
}

// GenerateTimeline returns the planning checklist. The table is the same for
// every wedding date and budget; each call gets its own copy.
func GenerateTimeline() types.Timeline {
	timeline := make(types.Timeline, len(planningMilestones))
	for _, m := range planningMilestones {
		tasks := make([]string, len(m.tasks))
		copy(tasks, m.tasks)
		timeline[m.bucket] = tasks
	}
	return timeline
}
