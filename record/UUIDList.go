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
	"fmt"
	"regexp"
)

// UuidLength is the fixed stride of a stored UUID chain: the canonical
// textual UUID length. Legacy 16-byte chains are not supported.
const UuidLength = 36

var uuidRegexp = regexp.MustCompile(`^[a-f0-9]{8}-([a-f0-9]{4}-){3}[a-f0-9]{12}$`)

func IsValidUuid(value string) bool {
	return uuidRegexp.MatchString(value)
}

// UUIDList is an ordered sequence of UUIDs physically stored as one
// fixed-stride concatenated string, the way membership and friend lists are
// persisted in a single text column.
type UUIDList struct {
	chain string
}

// ParseUUIDList validates a stored chain: the total length must be a multiple
// of the stride and every segment must be UUID-shaped.
func ParseUUIDList(chain string) (*UUIDList, error) {
	if len(chain)%UuidLength != 0 {
		return nil, fmt.Errorf("the UUID chain is malformed")
	}
	list := &UUIDList{chain: chain}
	for _, segment := range list.Strings() {
		if !IsValidUuid(segment) {
			return nil, fmt.Errorf("'%s' is not a valid UUID", segment)
		}
	}
	return list, nil
}

func NewUUIDList(uuids ...string) (*UUIDList, error) {
	list := &UUIDList{}
	for _, u := range uuids {
		if err := list.Append(u); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (l *UUIDList) Len() int {
	return len(l.chain) / UuidLength
}

func (l *UUIDList) String() string {
	return l.chain
}

func (l *UUIDList) At(index int) (string, error) {
	if index < 0 || index >= l.Len() {
		return "", fmt.Errorf("index %d is out of range for length %d", index, l.Len())
	}
	start := index * UuidLength
	return l.chain[start : start+UuidLength], nil
}

func (l *UUIDList) SetAt(index int, value string) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("index %d is out of range for length %d", index, l.Len())
	}
	if !IsValidUuid(value) {
		return fmt.Errorf("'%s' is not a valid UUID", value)
	}
	start := index * UuidLength
	l.chain = l.chain[:start] + value + l.chain[start+UuidLength:]
	return nil
}

func (l *UUIDList) Append(value string) error {
	if !IsValidUuid(value) {
		return fmt.Errorf("'%s' is not a valid UUID", value)
	}
	l.chain += value
	return nil
}

// Pop removes and returns the last UUID of the chain.
func (l *UUIDList) Pop() (string, error) {
	return l.PopAt(l.Len() - 1)
}

func (l *UUIDList) PopAt(index int) (string, error) {
	if l.Len() == 0 {
		return "", fmt.Errorf("cannot pop an empty list")
	}
	elem, err := l.At(index)
	if err != nil {
		return "", err
	}
	start := index * UuidLength
	l.chain = l.chain[:start] + l.chain[start+UuidLength:]
	return elem, nil
}

func (l *UUIDList) Contains(value string) bool {
	for _, segment := range l.Strings() {
		if segment == value {
			return true
		}
	}
	return false
}

// Strings splits the chain into individual UUIDs in order.
func (l *UUIDList) Strings() []string {
	result := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		start := i * UuidLength
		result = append(result, l.chain[start:start+UuidLength])
	}
	return result
}
