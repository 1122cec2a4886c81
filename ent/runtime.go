// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smartinez/hipolito/ent/chatevent"
	"github.com/smartinez/hipolito/ent/llmrequestevent"
	"github.com/smartinez/hipolito/ent/quizanswerevent"
	"github.com/smartinez/hipolito/ent/schema"
	"github.com/smartinez/hipolito/ent/sessionevent"
	"github.com/smartinez/hipolito/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescSessionID is the schema descriptor for session_id field.
	chateventDescSessionID := chateventFields[0].Descriptor()
	// chatevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatevent.SessionIDValidator = chateventDescSessionID.Validators[0].(func(string) error)
	// chateventDescReplyText is the schema descriptor for reply_text field.
	chateventDescReplyText := chateventFields[2].Descriptor()
	// chatevent.ReplyTextValidator is a validator for the "reply_text" field. It is called by the builders before save.
	chatevent.ReplyTextValidator = chateventDescReplyText.Validators[0].(func(string) error)
	// chateventDescSource is the schema descriptor for source field.
	chateventDescSource := chateventFields[3].Descriptor()
	// chatevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	chatevent.SourceValidator = chateventDescSource.Validators[0].(func(string) error)
	// chateventDescIntent is the schema descriptor for intent field.
	chateventDescIntent := chateventFields[4].Descriptor()
	// chatevent.DefaultIntent holds the default value on creation for the intent field.
	chatevent.DefaultIntent = chateventDescIntent.Default.(string)
	// chateventDescLevel is the schema descriptor for level field.
	chateventDescLevel := chateventFields[6].Descriptor()
	// chatevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	chatevent.LevelValidator = chateventDescLevel.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescSessionID is the schema descriptor for session_id field.
	quizanswereventDescSessionID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizanswerevent.SessionIDValidator = quizanswereventDescSessionID.Validators[0].(func(string) error)
	// quizanswereventDescPrompt is the schema descriptor for prompt field.
	quizanswereventDescPrompt := quizanswereventFields[2].Descriptor()
	// quizanswerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	quizanswerevent.PromptValidator = quizanswereventDescPrompt.Validators[0].(func(string) error)
	// quizanswereventDescCategory is the schema descriptor for category field.
	quizanswereventDescCategory := quizanswereventFields[6].Descriptor()
	// quizanswerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	quizanswerevent.CategoryValidator = quizanswereventDescCategory.Validators[0].(func(string) error)
	// quizanswereventDescDifficulty is the schema descriptor for difficulty field.
	quizanswereventDescDifficulty := quizanswereventFields[7].Descriptor()
	// quizanswerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizanswerevent.DifficultyValidator = quizanswereventDescDifficulty.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTurns is the schema descriptor for turns field.
	sessioneventDescTurns := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTurns holds the default value on creation for the turns field.
	sessionevent.DefaultTurns = sessioneventDescTurns.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSkippedAnswers is the schema descriptor for skipped_answers field.
	sessioneventDescSkippedAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSkippedAnswers holds the default value on creation for the skipped_answers field.
	sessionevent.DefaultSkippedAnswers = sessioneventDescSkippedAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultLevel holds the default value on creation for the level field.
	sessionevent.DefaultLevel = sessioneventDescLevel.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
