package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Resolve(t *testing.T) {
	l := NewLookup([]string{"board", "Cross", "Tommy Gun", ".38 Revolver"}, "board")

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"Cross", "Cross", true},
		{"cross", "Cross", true},
		{"CROSS", "Cross", true},
		{"tommy gun", "Tommy Gun", true},
		{".38 revolver", ".38 Revolver", true},
		{"board", "", false},
		{"Tommy", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := l.Resolve(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_LaterFoldedNameWins(t *testing.T) {
	l := NewLookup([]string{"Witch", "WITCH"})

	got, ok := l.Resolve("witch")
	assert.True(t, ok)
	assert.Equal(t, "WITCH", got)

	// exact matches are never shadowed by folding
	got, ok = l.Resolve("Witch")
	assert.True(t, ok)
	assert.Equal(t, "Witch", got)
}

func TestLookup_ContainsIsExact(t *testing.T) {
	l := NewLookup([]string{"Ghost"})
	assert.True(t, l.Contains("Ghost"))
	assert.False(t, l.Contains("ghost"))
}

func TestLookup_TableIsCopy(t *testing.T) {
	l := NewLookup([]string{"Ghost", "Ghoul"})
	table := l.Table()
	delete(table, "Ghost")

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"Ghost", "Ghoul"}, l.Keys())
}
