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

package view

type Role struct {
	Uuid                 string `json:"uuid"`
	BambooUuid           string `json:"bambooUuid"`
	Name                 string `json:"name"`
	Color                string `json:"color,omitempty"`
	Hierarchy            int    `json:"hierarchy"`
	Admin                bool   `json:"admin"`
	PermManagingChannels bool   `json:"permManagingChannels"`
	PermManagingRoles    bool   `json:"permManagingRoles"`
	PermDelete           bool   `json:"permDelete"`
	PermBan              bool   `json:"permBan"`
	PermKick             bool   `json:"permKick"`
	PermMute             bool   `json:"permMute"`
}

type Roles struct {
	Roles []Role `json:"roles"`
}

type RoleCreateReq struct {
	Name                 string `json:"name" validate:"required"`
	Color                string `json:"color"`
	Hierarchy            int    `json:"hierarchy"`
	Admin                bool   `json:"admin"`
	PermManagingChannels bool   `json:"permManagingChannels"`
	PermManagingRoles    bool   `json:"permManagingRoles"`
	PermDelete           bool   `json:"permDelete"`
	PermBan              bool   `json:"permBan"`
	PermKick             bool   `json:"permKick"`
	PermMute             bool   `json:"permMute"`
}
