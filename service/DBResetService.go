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
	"os"
	"path/filepath"

	"github.com/pandamonium-social/pandamonium-backend/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DBResetService drops and recreates the whole PANDAMONIUM schema. The dev
// variant additionally seeds test rows. Destructive, meant for the reset-db
// command only.
type DBResetService interface {
	ResetDatabase(dev bool) (string, error)
}

func NewDBResetService(cp db.ConnectionProvider, basePath string) DBResetService {
	return &dbResetServiceImpl{cp: cp, basePath: basePath}
}

type dbResetServiceImpl struct {
	cp       db.ConnectionProvider
	basePath string
}

func (d dbResetServiceImpl) ResetDatabase(dev bool) (string, error) {
	if err := d.executeScript("schema.sql"); err != nil {
		return "", err
	}
	if dev {
		if err := d.executeScript("schema_dev.sql"); err != nil {
			return "", err
		}
	}
	message := ResetConfirmationMessage(dev)
	log.Info(message)
	return message, nil
}

func (d dbResetServiceImpl) executeScript(name string) error {
	path := filepath.Join(d.basePath, "resources", name)
	script, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read schema script %s", path)
	}
	if _, err := d.cp.GetConnection().Exec(string(script)); err != nil {
		return errors.Wrapf(err, "failed to execute schema script %s", path)
	}
	return nil
}

// ResetConfirmationMessage is what the reset-db command prints on success.
func ResetConfirmationMessage(dev bool) string {
	if dev {
		return "La base de données a été réinitialisée avec des données de test."
	}
	return "La base de données a été réinitialisée sans données de test."
}
