// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package record

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/iancoleman/orderedmap"
)

const UuidColumn = "uuid"

// ColumnDef is one entry of a declarative record schema: the column name in
// table order, the candidate value and an optional constraint.
type ColumnDef struct {
	Name       string
	Value      interface{}
	Constraint Constraint
}

// Record is an ordered collection of validated columns backing one table row.
// The uuid column is always present at index 0; every other column gets the
// index of its declaration order starting at 1.
//
// All columns are constructed and validated even when an earlier one fails,
// so a caller gets diagnostics for the whole row at once; the aggregate
// validity is the AND of all column validities.
type Record struct {
	Table string

	columns *orderedmap.OrderedMap
	valid   bool
}

// New builds a record for the given table. An empty recordUuid generates a
// fresh one. The returned error is the first rejection encountered; the
// record is always returned and reports Valid() == false on any rejection.
func New(table string, recordUuid string, defs []ColumnDef) (*Record, error) {
	if recordUuid == "" {
		recordUuid = uuid.New().String()
	}

	r := &Record{
		Table:   table,
		columns: orderedmap.New(),
		valid:   true,
	}

	uuidColumn, _ := NewColumn(UuidColumn, recordUuid, 0, nil)
	r.columns.Set(UuidColumn, uuidColumn)

	var firstErr error
	for i, def := range defs {
		column, err := NewColumn(def.Name, def.Value, i+1, def.Constraint)
		r.columns.Set(def.Name, column)
		if err != nil {
			r.valid = false
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return r, firstErr
}

func (r *Record) Valid() bool {
	return r.valid
}

func (r *Record) Uuid() string {
	return r.Value(UuidColumn).(string)
}

// Column returns the named column, or nil for an unknown name.
func (r *Record) Column(name string) *Column {
	if v, exists := r.columns.Get(name); exists {
		return v.(*Column)
	}
	return nil
}

// Value returns the stored value of the named column, nil for an unknown name.
func (r *Record) Value(name string) interface{} {
	if column := r.Column(name); column != nil {
		return column.Value()
	}
	return nil
}

// Set re-validates and replaces the named column's value. An unknown name is
// a no-op. A rejection marks the whole record invalid; the record never flips
// back to valid on its own.
func (r *Record) Set(name string, value interface{}) error {
	column := r.Column(name)
	if column == nil {
		return nil
	}
	if err := column.Set(value); err != nil {
		r.valid = false
		return err
	}
	return nil
}

// Names lists the column names in table order, uuid first.
func (r *Record) Names() []string {
	return r.columns.Keys()
}

// Changed compares this record against a freshly fetched authoritative copy
// and returns the names of the columns whose values differ. The uuid column
// is never part of the changed set.
func (r *Record) Changed(fresh *Record) []string {
	changed := make([]string, 0)
	for _, name := range r.Names() {
		if name == UuidColumn {
			continue
		}
		var freshValue interface{}
		if fresh != nil {
			freshValue = fresh.Value(name)
		}
		if !reflect.DeepEqual(r.Value(name), freshValue) {
			changed = append(changed, name)
		}
	}
	return changed
}
