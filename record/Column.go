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
	"net/http"

	"github.com/pandamonium-social/pandamonium-backend/exception"
)

// Constraint checks a candidate column value and returns a user-facing
// rejection message, or "" when the value fits. Constraints are never called
// with nil values: an absent value is always acceptable, only the SQL schema
// decides about nullability.
type Constraint func(value interface{}) string

// Column is one validated value slot of a Record. Its index mirrors the
// ordinal position of the column in the backing table.
type Column struct {
	Name  string
	Index int

	value      interface{}
	valid      bool
	constraint Constraint
}

// NewColumn builds a column and validates the initial value. On rejection the
// column stores nil, is marked invalid and the constraint's message is
// returned as a CustomError; the column itself is still usable.
func NewColumn(name string, value interface{}, index int, constraint Constraint) (*Column, error) {
	column := &Column{
		Name:       name,
		Index:      index,
		valid:      true,
		constraint: constraint,
	}
	if err := column.check(value); err != nil {
		column.value = nil
		column.valid = false
		return column, err
	}
	column.value = value
	return column, nil
}

func (c *Column) Value() interface{} {
	return c.value
}

func (c *Column) Valid() bool {
	return c.valid
}

// Set replaces the stored value after re-validation. A rejected value leaves
// the previously stored value in place and flips the column to invalid.
func (c *Column) Set(value interface{}) error {
	if err := c.check(value); err != nil {
		c.valid = false
		return err
	}
	c.value = value
	c.valid = true
	return nil
}

func (c *Column) check(value interface{}) error {
	if c.constraint == nil || value == nil {
		return nil
	}
	if msg := c.constraint(value); msg != "" {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidEntityValue,
			Message: msg,
			Params:  map[string]interface{}{"column": c.Name},
		}
	}
	return nil
}
