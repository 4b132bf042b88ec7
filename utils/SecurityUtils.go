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

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"
)

// DateFormat is the wire format of every date handled by the API (dates of
// birth, registration dates).
const DateFormat = "2006-01-02"

// HashPassword returns the hex sha256 digest of the password. The hash is
// deliberately deterministic and unsalted: stored hashes are compared by
// equality. Known weakness, changing the scheme invalidates every stored
// credential and needs a migration.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(password string, hashedPassword string) bool {
	hashed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(hashedPassword)) == 1
}

func DateFromString(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

func DateToString(value time.Time) string {
	return value.Format(DateFormat)
}

func TimestampFromString(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func TimestampToString(value time.Time) string {
	return value.Format(time.RFC3339)
}
