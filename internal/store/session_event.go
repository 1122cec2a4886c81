package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartinez/hipolito/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetAction(data.Action).
		SetTurns(data.Turns).
		SetCorrectAnswers(data.CorrectAnswers).
		SetSkippedAnswers(data.SkippedAnswers).
		SetDurationSecs(data.DurationSecs).
		SetLevel(data.Level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context) ([]SessionSummary, error) {
	// End events carry the totals, so only those are aggregated.
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	byMode := make(map[string]*SessionSummary)
	for _, e := range events {
		s, ok := byMode[e.Mode]
		if !ok {
			s = &SessionSummary{Mode: e.Mode}
			byMode[e.Mode] = s
		}
		s.Sessions++
		s.Turns += e.Turns
		s.TotalSecs += e.DurationSecs
	}

	summaries := make([]SessionSummary, 0, len(byMode))
	for _, s := range byMode {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Mode < summaries[j].Mode })
	return summaries, nil
}
