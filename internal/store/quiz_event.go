package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartinez/hipolito/ent"
	"github.com/smartinez/hipolito/ent/quizanswerevent"
)

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetPrompt(data.Prompt).
		SetStudentAnswer(data.StudentAnswer).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetCategory(data.Category).
		SetDifficulty(data.Difficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStatsByCategory(ctx context.Context) ([]QuizCategoryStats, error) {
	events, err := r.client.QuizAnswerEvent.Query().
		Order(ent.Asc(quizanswerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz answers: %w", err)
	}

	byCategory := make(map[string]*QuizCategoryStats)
	for _, e := range events {
		st, ok := byCategory[e.Category]
		if !ok {
			st = &QuizCategoryStats{Category: e.Category}
			byCategory[e.Category] = st
		}
		st.Answered++
		if e.Correct {
			st.Correct++
		}
		if e.Skipped {
			st.Skipped++
		}
	}

	stats := make([]QuizCategoryStats, 0, len(byCategory))
	for _, st := range byCategory {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}
