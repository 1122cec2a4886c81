// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartinez/hipolito/ent/chatevent"
	"github.com/smartinez/hipolito/ent/predicate"
)

// ChatEventUpdate is the builder for updating ChatEvent entities.
type ChatEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChatEventMutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdate) Where(ps ...predicate.ChatEvent) *ChatEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdate) SetSessionID(v string) *ChatEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSessionID(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentText sets the "student_text" field.
func (_u *ChatEventUpdate) SetStudentText(v string) *ChatEventUpdate {
	_u.mutation.SetStudentText(v)
	return _u
}

// SetNillableStudentText sets the "student_text" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableStudentText(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetStudentText(*v)
	}
	return _u
}

// SetReplyText sets the "reply_text" field.
func (_u *ChatEventUpdate) SetReplyText(v string) *ChatEventUpdate {
	_u.mutation.SetReplyText(v)
	return _u
}

// SetNillableReplyText sets the "reply_text" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableReplyText(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetReplyText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ChatEventUpdate) SetSource(v string) *ChatEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSource(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatEventUpdate) SetIntent(v string) *ChatEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableIntent(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChatEventUpdate) SetConfidence(v float64) *ChatEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableConfidence(v *float64) *ChatEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChatEventUpdate) AddConfidence(v float64) *ChatEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ChatEventUpdate) SetLevel(v string) *ChatEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableLevel(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdate) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplyText(); ok {
		if err := chatevent.ReplyTextValidator(v); err != nil {
			return &ValidationError{Name: "reply_text", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.reply_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := chatevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := chatevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentText(); ok {
		_spec.SetField(chatevent.FieldStudentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyText(); ok {
		_spec.SetField(chatevent.FieldReplyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(chatevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(chatevent.FieldLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatEventUpdateOne is the builder for updating a single ChatEvent entity.
type ChatEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdateOne) SetSessionID(v string) *ChatEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSessionID(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentText sets the "student_text" field.
func (_u *ChatEventUpdateOne) SetStudentText(v string) *ChatEventUpdateOne {
	_u.mutation.SetStudentText(v)
	return _u
}

// SetNillableStudentText sets the "student_text" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableStudentText(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetStudentText(*v)
	}
	return _u
}

// SetReplyText sets the "reply_text" field.
func (_u *ChatEventUpdateOne) SetReplyText(v string) *ChatEventUpdateOne {
	_u.mutation.SetReplyText(v)
	return _u
}

// SetNillableReplyText sets the "reply_text" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableReplyText(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetReplyText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ChatEventUpdateOne) SetSource(v string) *ChatEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSource(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatEventUpdateOne) SetIntent(v string) *ChatEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableIntent(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChatEventUpdateOne) SetConfidence(v float64) *ChatEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableConfidence(v *float64) *ChatEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChatEventUpdateOne) AddConfidence(v float64) *ChatEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ChatEventUpdateOne) SetLevel(v string) *ChatEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableLevel(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdateOne) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdateOne) Where(ps ...predicate.ChatEvent) *ChatEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatEventUpdateOne) Select(field string, fields ...string) *ChatEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatEvent entity.
func (_u *ChatEventUpdateOne) Save(ctx context.Context) (*ChatEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdateOne) SaveX(ctx context.Context) *ChatEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReplyText(); ok {
		if err := chatevent.ReplyTextValidator(v); err != nil {
			return &ValidationError{Name: "reply_text", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.reply_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := chatevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := chatevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdateOne) sqlSave(ctx context.Context) (_node *ChatEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatevent.FieldID)
		for _, f := range fields {
			if !chatevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentText(); ok {
		_spec.SetField(chatevent.FieldStudentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyText(); ok {
		_spec.SetField(chatevent.FieldReplyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(chatevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(chatevent.FieldLevel, field.TypeString, value)
	}
	_node = &ChatEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
