// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/predicate"
)

// LorePackageUpdate is the builder for updating LorePackage entities.
type LorePackageUpdate struct {
	config
	hooks    []Hook
	mutation *LorePackageMutation
}

// Where appends a list predicates to the LorePackageUpdate builder.
func (_u *LorePackageUpdate) Where(ps ...predicate.LorePackage) *LorePackageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneName sets the "zone_name" field.
func (_u *LorePackageUpdate) SetZoneName(v string) *LorePackageUpdate {
	_u.mutation.SetZoneName(v)
	return _u
}

// SetNillableZoneName sets the "zone_name" field if the given value is not nil.
func (_u *LorePackageUpdate) SetNillableZoneName(v *string) *LorePackageUpdate {
	if v != nil {
		_u.SetZoneName(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *LorePackageUpdate) SetDocument(v map[string]interface{}) *LorePackageUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// Mutation returns the LorePackageMutation object of the builder.
func (_u *LorePackageUpdate) Mutation() *LorePackageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LorePackageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LorePackageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LorePackageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LorePackageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LorePackageUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LorePackage.job"`)
	}
	return nil
}

func (_u *LorePackageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lorepackage.Table, lorepackage.Columns, sqlgraph.NewFieldSpec(lorepackage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ZoneName(); ok {
		_spec.SetField(lorepackage.FieldZoneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(lorepackage.FieldDocument, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lorepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LorePackageUpdateOne is the builder for updating a single LorePackage entity.
type LorePackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LorePackageMutation
}

// SetZoneName sets the "zone_name" field.
func (_u *LorePackageUpdateOne) SetZoneName(v string) *LorePackageUpdateOne {
	_u.mutation.SetZoneName(v)
	return _u
}

// SetNillableZoneName sets the "zone_name" field if the given value is not nil.
func (_u *LorePackageUpdateOne) SetNillableZoneName(v *string) *LorePackageUpdateOne {
	if v != nil {
		_u.SetZoneName(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *LorePackageUpdateOne) SetDocument(v map[string]interface{}) *LorePackageUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// Mutation returns the LorePackageMutation object of the builder.
func (_u *LorePackageUpdateOne) Mutation() *LorePackageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LorePackageUpdate builder.
func (_u *LorePackageUpdateOne) Where(ps ...predicate.LorePackage) *LorePackageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LorePackageUpdateOne) Select(field string, fields ...string) *LorePackageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LorePackage entity.
func (_u *LorePackageUpdateOne) Save(ctx context.Context) (*LorePackage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LorePackageUpdateOne) SaveX(ctx context.Context) *LorePackage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LorePackageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LorePackageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LorePackageUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LorePackage.job"`)
	}
	return nil
}

func (_u *LorePackageUpdateOne) sqlSave(ctx context.Context) (_node *LorePackage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lorepackage.Table, lorepackage.Columns, sqlgraph.NewFieldSpec(lorepackage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LorePackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lorepackage.FieldID)
		for _, f := range fields {
			if !lorepackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lorepackage.FieldID {
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
	if value, ok := _u.mutation.ZoneName(); ok {
		_spec.SetField(lorepackage.FieldZoneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(lorepackage.FieldDocument, field.TypeJSON, value)
	}
	_node = &LorePackage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lorepackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
