// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// LorePackageCreate is the builder for creating a LorePackage entity.
type LorePackageCreate struct {
	config
	mutation *LorePackageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *LorePackageCreate) SetJobID(v string) *LorePackageCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetZoneName sets the "zone_name" field.
func (_c *LorePackageCreate) SetZoneName(v string) *LorePackageCreate {
	_c.mutation.SetZoneName(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *LorePackageCreate) SetDocument(v map[string]interface{}) *LorePackageCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *LorePackageCreate) SetPublishedAt(v time.Time) *LorePackageCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *LorePackageCreate) SetNillablePublishedAt(v *time.Time) *LorePackageCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LorePackageCreate) SetID(v string) *LorePackageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the ResearchJob entity.
func (_c *LorePackageCreate) SetJob(v *ResearchJob) *LorePackageCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the LorePackageMutation object of the builder.
func (_c *LorePackageCreate) Mutation() *LorePackageMutation {
	return _c.mutation
}

// Save creates the LorePackage in the database.
func (_c *LorePackageCreate) Save(ctx context.Context) (*LorePackage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LorePackageCreate) SaveX(ctx context.Context) *LorePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LorePackageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LorePackageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LorePackageCreate) defaults() {
	if _, ok := _c.mutation.PublishedAt(); !ok {
		v := lorepackage.DefaultPublishedAt()
		_c.mutation.SetPublishedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LorePackageCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "LorePackage.job_id"`)}
	}
	if _, ok := _c.mutation.ZoneName(); !ok {
		return &ValidationError{Name: "zone_name", err: errors.New(`ent: missing required field "LorePackage.zone_name"`)}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "LorePackage.document"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "LorePackage.published_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "LorePackage.job"`)}
	}
	return nil
}

func (_c *LorePackageCreate) sqlSave(ctx context.Context) (*LorePackage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LorePackage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LorePackageCreate) createSpec() (*LorePackage, *sqlgraph.CreateSpec) {
	var (
		_node = &LorePackage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lorepackage.Table, sqlgraph.NewFieldSpec(lorepackage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ZoneName(); ok {
		_spec.SetField(lorepackage.FieldZoneName, field.TypeString, value)
		_node.ZoneName = value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(lorepackage.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(lorepackage.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   lorepackage.JobTable,
			Columns: []string{lorepackage.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LorePackage.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LorePackageUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LorePackageCreate) OnConflict(opts ...sql.ConflictOption) *LorePackageUpsertOne {
	_c.conflict = opts
	return &LorePackageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LorePackageCreate) OnConflictColumns(columns ...string) *LorePackageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LorePackageUpsertOne{
		create: _c,
	}
}

type (
	// LorePackageUpsertOne is the builder for "upsert"-ing
	//  one LorePackage node.
	LorePackageUpsertOne struct {
		create *LorePackageCreate
	}

	// LorePackageUpsert is the "OnConflict" setter.
	LorePackageUpsert struct {
		*sql.UpdateSet
	}
)

// SetZoneName sets the "zone_name" field.
func (u *LorePackageUpsert) SetZoneName(v string) *LorePackageUpsert {
	u.Set(lorepackage.FieldZoneName, v)
	return u
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *LorePackageUpsert) UpdateZoneName() *LorePackageUpsert {
	u.SetExcluded(lorepackage.FieldZoneName)
	return u
}

// SetDocument sets the "document" field.
func (u *LorePackageUpsert) SetDocument(v map[string]interface{}) *LorePackageUpsert {
	u.Set(lorepackage.FieldDocument, v)
	return u
}

// UpdateDocument sets the "document" field to the value that was provided on create.
func (u *LorePackageUpsert) UpdateDocument() *LorePackageUpsert {
	u.SetExcluded(lorepackage.FieldDocument)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lorepackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LorePackageUpsertOne) UpdateNewValues() *LorePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lorepackage.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(lorepackage.FieldJobID)
		}
		if _, exists := u.create.mutation.PublishedAt(); exists {
			s.SetIgnore(lorepackage.FieldPublishedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LorePackageUpsertOne) Ignore() *LorePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LorePackageUpsertOne) DoNothing() *LorePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LorePackageCreate.OnConflict
// documentation for more info.
func (u *LorePackageUpsertOne) Update(set func(*LorePackageUpsert)) *LorePackageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LorePackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetZoneName sets the "zone_name" field.
func (u *LorePackageUpsertOne) SetZoneName(v string) *LorePackageUpsertOne {
	return u.Update(func(s *LorePackageUpsert) {
		s.SetZoneName(v)
	})
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *LorePackageUpsertOne) UpdateZoneName() *LorePackageUpsertOne {
	return u.Update(func(s *LorePackageUpsert) {
		s.UpdateZoneName()
	})
}

// SetDocument sets the "document" field.
func (u *LorePackageUpsertOne) SetDocument(v map[string]interface{}) *LorePackageUpsertOne {
	return u.Update(func(s *LorePackageUpsert) {
		s.SetDocument(v)
	})
}

// UpdateDocument sets the "document" field to the value that was provided on create.
func (u *LorePackageUpsertOne) UpdateDocument() *LorePackageUpsertOne {
	return u.Update(func(s *LorePackageUpsert) {
		s.UpdateDocument()
	})
}

// Exec executes the query.
func (u *LorePackageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LorePackageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LorePackageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LorePackageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LorePackageUpsertOne.ID is not supported by MySQL driver. Use LorePackageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LorePackageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LorePackageCreateBulk is the builder for creating many LorePackage entities in bulk.
type LorePackageCreateBulk struct {
	config
	err      error
	builders []*LorePackageCreate
	conflict []sql.ConflictOption
}

// Save creates the LorePackage entities in the database.
func (_c *LorePackageCreateBulk) Save(ctx context.Context) ([]*LorePackage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LorePackage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LorePackageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LorePackageCreateBulk) SaveX(ctx context.Context) []*LorePackage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LorePackageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LorePackageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LorePackage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LorePackageUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LorePackageCreateBulk) OnConflict(opts ...sql.ConflictOption) *LorePackageUpsertBulk {
	_c.conflict = opts
	return &LorePackageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LorePackageCreateBulk) OnConflictColumns(columns ...string) *LorePackageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LorePackageUpsertBulk{
		create: _c,
	}
}

// LorePackageUpsertBulk is the builder for "upsert"-ing
// a bulk of LorePackage nodes.
type LorePackageUpsertBulk struct {
	create *LorePackageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lorepackage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LorePackageUpsertBulk) UpdateNewValues() *LorePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lorepackage.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(lorepackage.FieldJobID)
			}
			if _, exists := b.mutation.PublishedAt(); exists {
				s.SetIgnore(lorepackage.FieldPublishedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LorePackage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LorePackageUpsertBulk) Ignore() *LorePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LorePackageUpsertBulk) DoNothing() *LorePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LorePackageCreateBulk.OnConflict
// documentation for more info.
func (u *LorePackageUpsertBulk) Update(set func(*LorePackageUpsert)) *LorePackageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LorePackageUpsert{UpdateSet: update})
	}))
	return u
}

// SetZoneName sets the "zone_name" field.
func (u *LorePackageUpsertBulk) SetZoneName(v string) *LorePackageUpsertBulk {
	return u.Update(func(s *LorePackageUpsert) {
		s.SetZoneName(v)
	})
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *LorePackageUpsertBulk) UpdateZoneName() *LorePackageUpsertBulk {
	return u.Update(func(s *LorePackageUpsert) {
		s.UpdateZoneName()
	})
}

// SetDocument sets the "document" field.
func (u *LorePackageUpsertBulk) SetDocument(v map[string]interface{}) *LorePackageUpsertBulk {
	return u.Update(func(s *LorePackageUpsert) {
		s.SetDocument(v)
	})
}

// UpdateDocument sets the "document" field to the value that was provided on create.
func (u *LorePackageUpsertBulk) UpdateDocument() *LorePackageUpsertBulk {
	return u.Update(func(s *LorePackageUpsert) {
		s.UpdateDocument()
	})
}

// Exec executes the query.
func (u *LorePackageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LorePackageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LorePackageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LorePackageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
