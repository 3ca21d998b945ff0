package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() Table[string] {
	return Table[string]{
		Rules: []Rule[string]{
			{Name: "budget", Keywords: []string{"budget"}, Response: "B"},
			{Name: "venue", Keywords: []string{"venue", "hall"}, Response: "V"},
		},
		Default: "D",
	}
}

func TestTable_Match(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		wantName  string
		wantMatch bool
	}{
		{"What is my BUDGET?", "B", "budget", true},
		{"Show me a banquet hall", "V", "venue", true},
		{"venue within budget", "B", "budget", true},
		{"hello", "D", "", false},
		{"", "D", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, name, ok := testTable().Match(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantMatch, ok)
		})
	}
}

func TestTable_MatchIsDeterministic(t *testing.T) {
	table := testTable()
	first, _, _ := table.Match("venue and budget")
	for i := 0; i < 50; i++ {
		got, _, _ := table.Match("venue and budget")
		assert.Equal(t, first, got)
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("how much does it cost", []string{"price", "cost"}))
	assert.False(t, ContainsAny("hello", []string{"", "price"}))
	assert.True(t, ContainsAny("latest trends", []string{"TREND"}))
}

func TestContainsWord(t *testing.T) {
	triggers := []string{"rate", "price", "how much", "trend", "cost"}
	tests := []struct {
		input string
		want  bool
	}{
		{"Help me decorate the hall", false},
		{"we will celebrate in Goa", false},
		{"need a costume for sangeet", false},
		{"What are the rates?", true},
		{"Price of a DJ", true},
		{"HOW MUCH for mehendi", true},
		{"what's trending, 2026", true},
		{"cost-effective caterers", true},
		{"rate", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.input, triggers))
		})
	}
	assert.False(t, ContainsWord("price", []string{""}))
}
