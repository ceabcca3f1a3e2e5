package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDestructive(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{"explicit flag", New("anything", "Anything", "", CategoryGeneral).WithDestructive(), true},
		{"destructive category", New("x", "X", "", CategoryDestructive), true},
		{"move_to_trash id", New("move_to_trash", "Move to Trash", "", CategoryGeneral), true},
		{"reset_ranking id", New("reset_ranking", "Reset Ranking", "", CategoryGeneral), true},
		{"clear_conversation id", New("clear_conversation", "Clear Conversation", "", CategoryGeneral), true},
		{"remove_ prefix", New("remove_alias", "Remove Alias", "", CategoryGeneral), true},
		{"delete_ prefix", New("delete_note", "Delete Note", "", CategoryGeneral), true},
		{"_trash substring", New("entry_trash", "Trash Entry", "", CategoryGeneral), true},
		{"permanently", New("erase_permanently", "Erase Permanently", "", CategoryGeneral), true},
		{"namespaced id still matches", New("clip:delete_entry", "Whatever", "", CategoryGeneral), true},
		{"title prefix delete", New("sdk_thing", "Delete All Drafts", "", CategoryGeneral), true},
		{"title prefix clear", New("sdk_thing", "Clear History", "", CategoryGeneral), true},
		{"plain action", New("copy_path", "Copy Path", "", CategoryShare), false},
		{"run action", New("run_script", "Run \"Hello\"", "", CategoryScriptOps), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDestructive(tt.action))
		})
	}
}

// The heuristic intentionally accepts false positives on benignly named
// third-party actions; this pins that behavior down instead of hiding it.
func TestIsDestructive_KnownFalsePositiveOnBenignTitles(t *testing.T) {
	benign := New("sdk_undelete", "Delete Detector Settings", "", CategoryGeneral)
	assert.True(t, IsDestructive(benign))
}
