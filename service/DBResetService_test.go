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

package service

import (
	"strings"
	"testing"
)

func TestResetConfirmationMessage(t *testing.T) {
	withData := ResetConfirmationMessage(true)
	if !strings.Contains(withData, "avec des données de test") {
		t.Errorf("expected dev confirmation to mention test data, got %q", withData)
	}

	withoutData := ResetConfirmationMessage(false)
	if !strings.Contains(withoutData, "sans données de test") {
		t.Errorf("expected plain confirmation to mention the absence of test data, got %q", withoutData)
	}

	if withData == withoutData {
		t.Error("expected the two confirmations to differ")
	}
}
