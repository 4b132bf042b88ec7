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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("pandamonium"), HashPassword("pandamonium"))
	assert.Equal(t, "0083b931d80dcb0792c7d6345f317a59e97d21414b5d80603de89d0412f465f7", HashPassword("pandamonium"))
	assert.NotEqual(t, HashPassword("pandamonium"), HashPassword("Pandamonium"))
	assert.Len(t, HashPassword("x"), 64)
}

func TestCheckPassword(t *testing.T) {
	hashed := HashPassword("motdepasse")
	assert.True(t, CheckPassword("motdepasse", hashed))
	assert.False(t, CheckPassword("autremotdepasse", hashed))
	assert.False(t, CheckPassword("motdepasse", "motdepasse"))
}

func TestDateRoundTrip(t *testing.T) {
	date, err := DateFromString("1998-04-12")
	assert.NoError(t, err)
	assert.Equal(t, "1998-04-12", DateToString(date))

	_, err = DateFromString("12/04/1998")
	assert.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	parsed, err := TimestampFromString(TimestampToString(now))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(now))
}
