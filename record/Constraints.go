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
	"regexp"
)

// MaxSize rejects string values longer than size with the given message.
func MaxSize(size int, message string) Constraint {
	return func(value interface{}) string {
		if s, ok := value.(string); ok && len(s) > size {
			return message
		}
		return ""
	}
}

// MinSize rejects string values shorter than size with the given message.
func MinSize(size int, message string) Constraint {
	return func(value interface{}) string {
		if s, ok := value.(string); ok && len(s) < size {
			return message
		}
		return ""
	}
}

// SizeBetween rejects string values outside [min, max] with the given message.
func SizeBetween(min int, max int, message string) Constraint {
	return func(value interface{}) string {
		if s, ok := value.(string); ok && (len(s) < min || len(s) > max) {
			return message
		}
		return ""
	}
}

// Matches rejects string values that do not match the pattern.
func Matches(pattern *regexp.Regexp, message string) Constraint {
	return func(value interface{}) string {
		if s, ok := value.(string); ok && !pattern.MatchString(s) {
			return message
		}
		return ""
	}
}

// IntBetween rejects integer values outside [min, max] with the given message.
func IntBetween(min int, max int, message string) Constraint {
	return func(value interface{}) string {
		i, ok := toInt(value)
		if ok && (i < min || i > max) {
			return message
		}
		return ""
	}
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}
