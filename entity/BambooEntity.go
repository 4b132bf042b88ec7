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
	"time"

	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

const BambooTable = "bamboos"

type BambooEntity struct {
	tableName struct{} `pg:"bamboos, alias:bamboos"`

	Uuid         string    `pg:"uuid, pk, type:varchar"`
	Name         string    `pg:"name, type:varchar"`
	CreationDate time.Time `pg:"creation_date, type:date"`
	Members      string    `pg:"members, type:varchar, use_zero"`
	OwnerUuid    string    `pg:"owner_uuid, type:varchar"`
}

// NewBambooRecord builds the validated record of a bamboo row. The members
// chain always starts with the owner, seeded at creation time.
func NewBambooRecord(ent *BambooEntity) (*record.Record, error) {
	return record.New(BambooTable, ent.Uuid, []record.ColumnDef{
		{Name: "name", Value: ent.Name, Constraint: record.MaxSize(50, exception.BambooNameTooLongMsg)},
		{Name: "creation_date", Value: ent.CreationDate},
		{Name: "members", Value: ent.Members},
		{Name: "owner_uuid", Value: ent.OwnerUuid},
	})
}

func MakeBambooView(bambooEntity *BambooEntity) *view.Bamboo {
	return &view.Bamboo{
		Uuid:         bambooEntity.Uuid,
		Name:         bambooEntity.Name,
		CreationDate: utils.DateToString(bambooEntity.CreationDate),
		OwnerUuid:    bambooEntity.OwnerUuid,
		Members:      splitUuidChain(bambooEntity.Members),
	}
}
