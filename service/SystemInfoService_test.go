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

import "testing"

func TestBackendVersionFromEnv(t *testing.T) {
	t.Setenv(PANDAMONIUM_BACKEND_VERSION, "0.3.1")

	systemInfoService, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("failed to read system configuration: %v", err)
	}
	if version := systemInfoService.GetBackendVersion(); version != "0.3.1" {
		t.Errorf("expected version 0.3.1, got %s", version)
	}
}

func TestBackendVersionDefault(t *testing.T) {
	t.Setenv(PANDAMONIUM_BACKEND_VERSION, "")

	systemInfoService, err := NewSystemInfoService()
	if err != nil {
		t.Fatalf("failed to read system configuration: %v", err)
	}
	if version := systemInfoService.GetBackendVersion(); version != "unknown" {
		t.Errorf("expected the unknown fallback, got %s", version)
	}
}
