package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to help on empty text", text: "   ", wantType: CmdHelp},
		{name: "Should parse status", text: "status", wantType: CmdStatus},
		{name: "Should parse the status alias", text: "st", wantType: CmdStatus},
		{name: "Should ignore case", text: "NEXT", wantType: CmdNext},
		{name: "Should keep extra arguments", text: "help status", wantType: CmdHelp, wantArgs: []string{"status"}},
		{name: "Should reject unknown commands", text: "add <@U123>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cmd)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/planner status")
	assert.Contains(t, help, "/planner next")
	assert.Contains(t, help, "/planner help")
}
