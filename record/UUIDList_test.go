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

import "testing"

const (
	uuidA = "11111111-1111-1111-1111-111111111111"
	uuidB = "22222222-2222-2222-2222-222222222222"
	uuidC = "33333333-3333-3333-3333-333333333333"
)

func TestParseUUIDList(t *testing.T) {
	list, err := ParseUUIDList(uuidA + uuidB)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Len() != 2 {
		t.Errorf("expected length 2, got %d", list.Len())
	}
	strs := list.Strings()
	if strs[0] != uuidA || strs[1] != uuidB {
		t.Errorf("expected [%s %s], got %v", uuidA, uuidB, strs)
	}
}

func TestParseUUIDListEmpty(t *testing.T) {
	list, err := ParseUUIDList("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("expected empty list, got length %d", list.Len())
	}
}

func TestParseUUIDListMalformed(t *testing.T) {
	if _, err := ParseUUIDList(uuidA + "garbage"); err == nil {
		t.Error("expected error for a chain with a bad stride")
	}
	if _, err := ParseUUIDList("zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"); err == nil {
		t.Error("expected error for a segment that is not a uuid")
	}
}

func TestUUIDListAppend(t *testing.T) {
	list, _ := NewUUIDList(uuidA)
	if err := list.Append(uuidB); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.String() != uuidA+uuidB {
		t.Errorf("expected chain %q, got %q", uuidA+uuidB, list.String())
	}
	if err := list.Append("not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
}

func TestUUIDListContains(t *testing.T) {
	list, _ := NewUUIDList(uuidA, uuidB)
	if !list.Contains(uuidB) {
		t.Errorf("expected list to contain %s", uuidB)
	}
	if list.Contains(uuidC) {
		t.Errorf("expected list to not contain %s", uuidC)
	}
}

func TestUUIDListAtAndSetAt(t *testing.T) {
	list, _ := NewUUIDList(uuidA, uuidB)
	elem, err := list.At(1)
	if err != nil || elem != uuidB {
		t.Errorf("expected %s at index 1, got %q (err %v)", uuidB, elem, err)
	}
	if _, err := list.At(2); err == nil {
		t.Error("expected error for out of range index")
	}

	if err := list.SetAt(0, uuidC); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.String() != uuidC+uuidB {
		t.Errorf("expected chain %q, got %q", uuidC+uuidB, list.String())
	}
	if err := list.SetAt(0, "not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
}

func TestUUIDListPop(t *testing.T) {
	list, _ := NewUUIDList(uuidA, uuidB, uuidC)

	elem, err := list.Pop()
	if err != nil || elem != uuidC {
		t.Errorf("expected %s from Pop, got %q (err %v)", uuidC, elem, err)
	}

	elem, err = list.PopAt(0)
	if err != nil || elem != uuidA {
		t.Errorf("expected %s from PopAt(0), got %q (err %v)", uuidA, elem, err)
	}
	if list.Len() != 1 || !list.Contains(uuidB) {
		t.Errorf("expected only %s to remain, got %q", uuidB, list.String())
	}

	list.Pop()
	if _, err := list.Pop(); err == nil {
		t.Error("expected error popping an empty list")
	}
}
