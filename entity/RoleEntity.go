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

package entity

import (
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

const RoleTable = "roles"

// Hierarchy bounds of a role. 0 is the lowest rank, 100 the highest.
const (
	MinRoleHierarchy = 0
	MaxRoleHierarchy = 100
)

type RoleEntity struct {
	tableName struct{} `pg:"roles, alias:roles"`

	Uuid                 string `pg:"uuid, pk, type:varchar"`
	Name                 string `pg:"name, type:varchar"`
	Color                string `pg:"color, type:varchar, use_zero"`
	Hierarchy            int    `pg:"hierarchy, use_zero"`
	Admin                bool   `pg:"admin, use_zero"`
	PermManagingChannels bool   `pg:"perm_managing_channels, use_zero"`
	PermManagingRoles    bool   `pg:"perm_managing_roles, use_zero"`
	PermDelete           bool   `pg:"perm_delete, use_zero"`
	PermBan              bool   `pg:"perm_ban, use_zero"`
	PermKick             bool   `pg:"perm_kick, use_zero"`
	PermMute             bool   `pg:"perm_mute, use_zero"`
	BambooUuid           string `pg:"bamboo_uuid, type:varchar"`
}

func NewRoleRecord(ent *RoleEntity) (*record.Record, error) {
	return record.New(RoleTable, ent.Uuid, []record.ColumnDef{
		{Name: "name", Value: ent.Name, Constraint: record.MaxSize(50, exception.RoleNameTooLongMsg)},
		{Name: "color", Value: ent.Color},
		{Name: "hierarchy", Value: ent.Hierarchy, Constraint: record.IntBetween(MinRoleHierarchy, MaxRoleHierarchy, exception.RoleHierarchyOutOfRangeMsg)},
		{Name: "admin", Value: ent.Admin},
		{Name: "perm_managing_channels", Value: ent.PermManagingChannels},
		{Name: "perm_managing_roles", Value: ent.PermManagingRoles},
		{Name: "perm_delete", Value: ent.PermDelete},
		{Name: "perm_ban", Value: ent.PermBan},
		{Name: "perm_kick", Value: ent.PermKick},
		{Name: "perm_mute", Value: ent.PermMute},
		{Name: "bamboo_uuid", Value: ent.BambooUuid},
	})
}

func MakeRoleView(roleEntity *RoleEntity) *view.Role {
	return &view.Role{
		Uuid:                 roleEntity.Uuid,
		BambooUuid:           roleEntity.BambooUuid,
		Name:                 roleEntity.Name,
		Color:                roleEntity.Color,
		Hierarchy:            roleEntity.Hierarchy,
		Admin:                roleEntity.Admin,
		PermManagingChannels: roleEntity.PermManagingChannels,
		PermManagingRoles:    roleEntity.PermManagingRoles,
		PermDelete:           roleEntity.PermDelete,
		PermBan:              roleEntity.PermBan,
		PermKick:             roleEntity.PermKick,
		PermMute:             roleEntity.PermMute,
	}
}
