package knowledge

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	vocabularyFile  = "vocabulario.json"
	fixedAnswerFile = "preguntas-respuestas.json"
)

// LoadError reports that the knowledge datasets could not be loaded.
// Callers recover by falling back to the built-in dataset; the error is
// informational, never user-facing.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load knowledge data %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates both knowledge documents from fsys and
// returns a ready-to-query Base. On any failure it returns the built-in
// fallback Base alongside a *LoadError describing what went wrong, so
// the caller can always hold a conversation.
func Load(fsys fs.FS) (*Base, error) {
	var vocabDoc vocabularyDoc
	if err := loadValidated(fsys, vocabularyFile, "vocabulario.schema.json", &vocabDoc); err != nil {
		return Fallback(), err
	}

	var answerDoc fixedAnswerDoc
	if err := loadValidated(fsys, fixedAnswerFile, "preguntas-respuestas.schema.json", &answerDoc); err != nil {
		return Fallback(), err
	}

	return newBase(vocabDoc.Terms, answerDoc.Questions), nil
}

// LoadDefault loads the embedded story datasets.
func LoadDefault() (*Base, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return Fallback(), &LoadError{File: "data", Err: err}
	}
	return Load(sub)
}

// loadValidated reads a JSON document, validates it against its
// embedded schema, and decodes it into out.
func loadValidated(fsys fs.FS, name, schemaName string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &LoadError{File: name, Err: err}
	}

	if err := validateDocument(schemaName, raw); err != nil {
		return &LoadError{File: name, Err: err}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &LoadError{File: name, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// validateDocument checks raw JSON against one of the embedded schemas.
func validateDocument(schemaName string, raw []byte) error {
	schemaRaw, err := dataFS.ReadFile("data/" + schemaName)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	var schemaParsed any
	if err := json.Unmarshal(schemaRaw, &schemaParsed); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := "schema://" + schemaName
	if err := c.AddResource(schemaURL, schemaParsed); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// newBase builds a Base with deterministic iteration order: entries are
// sorted by key so ties in similarity scoring always resolve the same way.
func newBase(vocab map[string]*VocabularyEntry, answers map[string]*FixedAnswer) *Base {
	b := &Base{
		vocab:   make(map[string]*VocabularyEntry, len(vocab)),
		answers: make([]*FixedAnswer, 0, len(answers)),
	}

	for term, entry := range vocab {
		e := *entry
		e.Term = term
		b.vocab[term] = &e
		b.vocabTerms = append(b.vocabTerms, term)
	}
	sort.Strings(b.vocabTerms)

	keys := make([]string, 0, len(answers))
	for key := range answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		a := *answers[key]
		a.Key = key
		b.answers = append(b.answers, &a)
	}

	return b
}
