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

const BranchTable = "branches"

type BranchEntity struct {
	tableName struct{} `pg:"branches, alias:branches"`

	Uuid       string `pg:"uuid, pk, type:varchar"`
	Name       string `pg:"name, type:varchar"`
	BambooUuid string `pg:"bamboo_uuid, type:varchar"`
}

func NewBranchRecord(ent *BranchEntity) (*record.Record, error) {
	return record.New(BranchTable, ent.Uuid, []record.ColumnDef{
		{Name: "name", Value: ent.Name, Constraint: record.MaxSize(50, exception.BranchNameTooLongMsg)},
		{Name: "bamboo_uuid", Value: ent.BambooUuid},
	})
}

func MakeBranchView(branchEntity *BranchEntity) *view.Branch {
	return &view.Branch{
		Uuid:       branchEntity.Uuid,
		Name:       branchEntity.Name,
		BambooUuid: branchEntity.BambooUuid,
	}
}
