// Package quiz implements the virtual-teacher flow: a shuffled pass
// through the fixed question set with free-text grading, followed by
// unscored free conversation about the story.
package quiz

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartinez/hipolito/internal/textnorm"
)

// State identifies where the machine is in the session flow.
type State string

const (
	StateNotStarted           State = "not_started"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateAsking               State = "asking"
	StateFreeConversation     State = "free_conversation"
)

// Turn is one student/teacher exchange in the session log.
type Turn struct {
	Student string
	Teacher string
	At      time.Time
}

// Grade describes how one question's answer was judged.
type Grade struct {
	Question *Question
	Correct  bool
	Skipped  bool
}

// Response is the teacher's reply for one Submit call.
type Response struct {
	Text string

	// Grade is set when the submission answered an active question,
	// nil for confirmation and free-conversation turns.
	Grade *Grade

	// SessionComplete is true on the turn that finished the last
	// question.
	SessionComplete bool
}

// Machine runs one quiz session. One instance per conversation; not
// safe for concurrent use.
type Machine struct {
	questions []Question
	order     []Question
	cursor    int
	correct   int
	skipped   int
	state     State
	log       []Turn
	rng       *rand.Rand
	now       func() time.Time
	sessionID string
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand injects the shuffle randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithClock injects the timestamp source for the session log.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// NewMachine creates a Machine over the given question set.
func NewMachine(questions []Question, opts ...Option) *Machine {
	m := &Machine{
		questions: questions,
		state:     StateNotStarted,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

const welcomeMessage = "¡Hola! 👋 Soy tu profesora virtual. He leído el cuento de Hipólito y me encantaría saber qué tanto recuerdas de la historia. Te voy a hacer algunas preguntas divertidas. ¿Estás listo? 😊"

const confirmationMessage = "¡Perfecto! Me encanta tu entusiasmo. Empecemos entonces... 🎉\n\n"

const noQuestionsMessage = "¡Qué pena! Hoy no tengo preguntas preparadas, pero podemos conversar sobre el cuento de Hipólito. ¿Qué parte te gustó más? 🤔"

// Start begins a new session: shuffles the questions, resets counters
// and returns the welcome prompt.
func (m *Machine) Start() string {
	m.order = make([]Question, len(m.questions))
	copy(m.order, m.questions)
	m.rng.Shuffle(len(m.order), func(i, j int) {
		m.order[i], m.order[j] = m.order[j], m.order[i]
	})

	m.cursor = 0
	m.correct = 0
	m.skipped = 0
	m.log = nil
	m.state = StateAwaitingConfirmation
	m.sessionID = uuid.NewString()

	m.logTeacher(welcomeMessage)
	return welcomeMessage
}

// Submit processes one student message according to the current state.
// It never fails: empty input grades as a non-match.
func (m *Machine) Submit(studentText string) Response {
	switch m.state {
	case StateNotStarted:
		return Response{Text: m.Start()}

	case StateAwaitingConfirmation:
		// Any input counts as "ready".
		m.logStudent(studentText)
		if len(m.order) == 0 {
			// Nothing to ask; skip straight to free conversation.
			reply := noQuestionsMessage
			m.logTeacher(reply)
			m.state = StateFreeConversation
			return Response{Text: reply, SessionComplete: true}
		}
		reply := confirmationMessage + m.askCurrent()
		m.logTeacher(reply)
		m.state = StateAsking
		return Response{Text: reply}

	case StateAsking:
		return m.submitAnswer(studentText)

	default:
		m.logStudent(studentText)
		reply := m.freeConversation(studentText)
		m.logTeacher(reply)
		return Response{Text: reply}
	}
}

// submitAnswer grades the active question and moves the session along.
func (m *Machine) submitAnswer(studentText string) Response {
	m.logStudent(studentText)

	q := &m.order[m.cursor]
	grade := &Grade{Question: q}

	var reply string
	switch {
	case IsDontKnow(studentText):
		// Not knowing is fine; hand over the answer without penalty.
		grade.Skipped = true
		m.skipped++
		reply = "No pasa nada, está bien no recordar todo. Te ayudo: " +
			stripCelebration(q.Correct) + "\n\n" + q.Explanation

	case Evaluate(q, studentText):
		grade.Correct = true
		m.correct++
		reply = q.Correct + "\n\n" + q.Explanation

	default:
		// Never "wrong" — teach the answer instead.
		reply = "No pasa nada, te ayudo con la respuesta correcta: " +
			stripCelebration(q.Correct) + "\n\n" + q.Explanation
	}

	m.cursor++
	resp := Response{Grade: grade}

	if m.cursor < len(m.order) {
		reply += "\n\n" + m.askCurrent()
	} else {
		reply += "\n\n" + m.finalSummary()
		m.state = StateFreeConversation
		resp.SessionComplete = true
	}

	m.logTeacher(reply)
	resp.Text = reply
	return resp
}

// askCurrent returns the prompt for the question under the cursor.
func (m *Machine) askCurrent() string {
	return m.order[m.cursor].Prompt
}

// finalSummary celebrates the finished session. Deliberately no numeric
// score: the quiz never discourages a child with numbers.
func (m *Machine) finalSummary() string {
	return "🎉 ¡Terminamos con todas las preguntas! Ha sido un placer conversar contigo sobre la historia de Hipólito. " +
		"¡Excelente trabajo! 🌟 Se nota que disfrutaste el cuento y aprendiste muchas cosas sobre Hipólito, Sara y Benjamín." +
		"\n\n¿Te gustaría que conversemos sobre algo específico del cuento o tienes alguna pregunta sobre Hipólito? 🤔"
}

// Reset reshuffles and starts a fresh session, clearing the log.
func (m *Machine) Reset() string {
	return m.Start()
}

// State returns the current machine state.
func (m *Machine) State() State {
	return m.state
}

// SessionID returns the identifier of the current session, empty before
// the first Start.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// Progress reports the cursor position and running tallies.
func (m *Machine) Progress() (answered, total, correct, skipped int) {
	return m.cursor, len(m.order), m.correct, m.skipped
}

// Order returns a copy of the shuffled question order for the current
// session.
func (m *Machine) Order() []Question {
	out := make([]Question, len(m.order))
	copy(out, m.order)
	return out
}

// Log returns a copy of the session conversation log.
func (m *Machine) Log() []Turn {
	out := make([]Turn, len(m.log))
	copy(out, m.log)
	return out
}

// RecentLog returns at most the last n turns.
func (m *Machine) RecentLog(n int) []Turn {
	log := m.log
	if n > 0 && len(log) > n {
		log = log[len(log)-n:]
	}
	out := make([]Turn, len(log))
	copy(out, log)
	return out
}

func (m *Machine) logStudent(text string) {
	m.log = append(m.log, Turn{Student: text, At: m.now()})
}

func (m *Machine) logTeacher(text string) {
	m.log = append(m.log, Turn{Teacher: text, At: m.now()})
}

var celebrationRe = regexp.MustCompile(`¡[^!]*!`)

// stripCelebration removes the "¡...!" opener from a canonical correct
// response so it reads naturally after a supportive preamble.
func stripCelebration(s string) string {
	return strings.TrimSpace(celebrationRe.ReplaceAllString(s, ""))
}

// freeTopic pairs trigger keywords with a canned elaboration for the
// post-quiz conversation.
type freeTopic struct {
	keywords []string
	reply    string
}

// freeTopics is evaluated in order; the first topic with any keyword
// present wins.
var freeTopics = []freeTopic{
	{
		keywords: []string{"llama", "nombre", "titulo"},
		reply:    "El cuento se llama 'Hipólito, mi perro-dragón' 📚. Es una historia muy bonita sobre Sara y Benjamín que encuentran a una criatura mágica muy especial.",
	},
	{
		keywords: []string{"autor", "escribio", "escritora", "escritor"},
		reply:    "Sobre el autor del cuento, no tengo esa información específica en este momento. Lo que sí puedo contarte es todo sobre la historia de Hipólito y sus aventuras. 😊",
	},
	{
		keywords: []string{"favorito", "favorita", "gusta"},
		reply:    "¡Me encanta cuando los niños me hablan de sus partes favoritas! ¿Cuál fue tu momento favorito del cuento? ¿Fue cuando apareció Hipólito, cuando aprendió a volar, o tal vez otra parte?",
	},
	{
		keywords: []string{"hipolito"},
		reply:    "¡Hipólito es increíble! Es un perro-dragón con alas blancas y destellos dorados, tiene una cicatriz misteriosa de tres puntas y está aprendiendo a volar. ¿Qué más te gustaría saber sobre él?",
	},
	{
		keywords: []string{"sara", "benjamin"},
		reply:    "Sara y Benjamín son hermanos muy valientes y cariñosos. Sara fue quien encontró a Hipólito en la puerta de su casa un día de lluvia. ¿Te gustaría saber más sobre sus aventuras?",
	},
	{
		keywords: []string{"final", "termina", "acaba"},
		reply:    "El cuento tiene un final muy emotivo donde toda la familia decide adoptar a Hipólito y su casa se convierte en una pista de aterrizaje para que practique volar. ¡Es muy tierno!",
	},
	{
		keywords: []string{"gracias", "perfecto", "genial"},
		reply:    "¡De nada! Me encanta conversar sobre el cuento contigo. ¿Hay algo más que te gustaría preguntarme sobre la historia de Hipólito?",
	},
}

// freeConversation answers post-quiz questions from the topic table.
func (m *Machine) freeConversation(studentText string) string {
	normalized := textnorm.Normalize(studentText)

	for _, topic := range freeTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(normalized, kw) {
				return "¡Qué buena pregunta! " + topic.reply
			}
		}
	}

	return "¡Qué buena pregunta! Esa es una pregunta muy interesante. Como profesora virtual especializada en el cuento de Hipólito, " +
		"puedo ayudarte con preguntas sobre la historia, los personajes, o los lugares del cuento. " +
		"¿Hay algo específico sobre la aventura de Hipólito que te gustaría saber?"
}
