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
	"errors"
	"testing"

	"github.com/pandamonium-social/pandamonium-backend/exception"
)

func TestRecordUuidColumnAtIndexZero(t *testing.T) {
	r, err := New("users", "", []ColumnDef{
		{Name: "username", Value: "panda"},
		{Name: "email", Value: "panda@example.fr"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !r.Valid() {
		t.Error("expected record to be valid")
	}
	if r.Column(UuidColumn).Index != 0 {
		t.Errorf("expected uuid column at index 0, got %d", r.Column(UuidColumn).Index)
	}
	if !IsValidUuid(r.Uuid()) {
		t.Errorf("expected a generated uuid, got %q", r.Uuid())
	}

	names := r.Names()
	expected := []string{"uuid", "username", "email"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected column %q at position %d, got %q", expected[i], i, names[i])
		}
	}
}

func TestRecordKeepsProvidedUuid(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"
	r, err := New("users", id, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Uuid() != id {
		t.Errorf("expected uuid %q, got %q", id, r.Uuid())
	}
}

func TestRecordValidatesAllColumns(t *testing.T) {
	r, err := New("users", "", []ColumnDef{
		{Name: "username", Value: "this name is way too long", Constraint: MaxSize(16, "username too long")},
		{Name: "bio", Value: "this bio is also too long", Constraint: MaxSize(10, "bio too long")},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var customErr *exception.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if customErr.Message != "username too long" {
		t.Errorf("expected the first rejection message, got %q", customErr.Message)
	}
	if r.Valid() {
		t.Error("expected record to be invalid")
	}
	// both columns must have been checked, not just the first failing one
	if r.Column("username").Valid() {
		t.Error("expected username column to be invalid")
	}
	if r.Column("bio").Valid() {
		t.Error("expected bio column to be invalid")
	}
}

func TestColumnSetKeepsPreviousValueOnRejection(t *testing.T) {
	column, err := NewColumn("name", "ok", 1, MaxSize(5, "too long"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := column.Set("definitely too long"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if column.Valid() {
		t.Error("expected column to be invalid after rejection")
	}
	if column.Value() != "ok" {
		t.Errorf("expected previous value to survive the rejection, got %v", column.Value())
	}

	if err := column.Set("fine"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !column.Valid() {
		t.Error("expected column to be valid again")
	}
	if column.Value() != "fine" {
		t.Errorf("expected value %q, got %v", "fine", column.Value())
	}
}

func TestRecordSetUnknownColumnIsNoOp(t *testing.T) {
	r, _ := New("users", "", nil)
	if err := r.Set("missing", "value"); err != nil {
		t.Errorf("expected no error for unknown column, got %v", err)
	}
	if !r.Valid() {
		t.Error("expected record to stay valid")
	}
}

func TestRecordChanged(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"
	defs := func(name, bio string) []ColumnDef {
		return []ColumnDef{
			{Name: "name", Value: name},
			{Name: "bio", Value: bio},
		}
	}
	fresh, _ := New("bamboos", id, defs("old name", "bio"))
	patched, _ := New("bamboos", id, defs("new name", "bio"))

	changed := patched.Changed(fresh)
	if len(changed) != 1 || changed[0] != "name" {
		t.Errorf("expected changed columns [name], got %v", changed)
	}

	unchanged := fresh.Changed(fresh)
	if len(unchanged) != 0 {
		t.Errorf("expected no changed columns, got %v", unchanged)
	}
}
