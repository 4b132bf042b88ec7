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

package exception

import "testing"

func TestCustomErrorParamSubstitution(t *testing.T) {
	err := CustomError{
		Status:  404,
		Code:    UserNotFound,
		Message: UserNotFoundMsg,
		Params:  map[string]interface{}{"userId": "11111111-1111-1111-1111-111111111111"},
	}
	expected := "Aucun utilisateur avec l'identifiant 11111111-1111-1111-1111-111111111111."
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestCustomErrorAppendsDebug(t *testing.T) {
	err := CustomError{
		Status:  500,
		Message: "Internal error",
		Debug:   "connection refused",
	}
	expected := "Internal error | connection refused"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}
