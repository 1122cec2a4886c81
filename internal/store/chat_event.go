package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendChatEvent(ctx context.Context, data ChatEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChatEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentText(data.StudentText).
		SetReplyText(data.ReplyText).
		SetSource(data.Source).
		SetIntent(data.Intent).
		SetConfidence(data.Confidence).
		SetLevel(data.Level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat event: %w", err)
	}
	return nil
}
