package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStatus CommandType = "status"
	CmdNext   CommandType = "next"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "status", "st":
		cmd.Type = CmdStatus
	case "next":
		cmd.Type = CmdNext
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/planner status`" + ` - Show the next reminder, the session it announces and the last reminder sent
• ` + "`/planner next`" + ` - Show only the next reminder and session date
• ` + "`/planner help`" + ` - Show this message`
}
