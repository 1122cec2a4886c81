package chat

import "github.com/smartinez/hipolito/internal/tutor"

// replyMsg is sent when the storyteller has answered a turn.
type replyMsg struct {
	Reply tutor.Reply
}

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg struct{}
