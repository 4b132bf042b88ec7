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
	"fmt"
	"os"
	"strconv"

	"github.com/pandamonium-social/pandamonium-backend/view"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	BASE_PATH                       = "BASE_PATH"
	PRODUCTION_MODE                 = "PRODUCTION_MODE"
	LOG_LEVEL                       = "LOG_LEVEL"
	LISTEN_ADDRESS                  = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED                  = "ORIGIN_ALLOWED"
	PANDAMONIUM_BACKEND_VERSION     = "PANDAMONIUM_BACKEND_VERSION"
	PANDAMONIUM_POSTGRESQL_HOST     = "PANDAMONIUM_POSTGRESQL_HOST"
	PANDAMONIUM_POSTGRESQL_PORT     = "PANDAMONIUM_POSTGRESQL_PORT"
	PANDAMONIUM_POSTGRESQL_DB_NAME  = "PANDAMONIUM_POSTGRESQL_DB_NAME"
	PANDAMONIUM_POSTGRESQL_USERNAME = "PANDAMONIUM_POSTGRESQL_USERNAME"
	PANDAMONIUM_POSTGRESQL_PASSWORD = "PANDAMONIUM_POSTGRESQL_PASSWORD"
	PG_SSL_MODE                     = "PG_SSL_MODE"
	DB_CREDENTIALS_FILE             = "DB_CREDENTIALS_FILE"
	SESSION_TTL_MINUTES             = "SESSION_TTL_MINUTES"
)

type SystemInfoService interface {
	GetSystemInfo() *view.SystemInfo
	Init() error
	GetBasePath() string
	IsProductionMode() bool
	GetBackendVersion() string
	GetLogLevel() string
	GetListenAddress() string
	GetOriginAllowed() string
	GetPGHost() string
	GetPGPort() int
	GetPGDB() string
	GetPGUser() string
	GetPGPassword() string
	GetPGSSLMode() string
	GetSessionTTLMinutes() int
	GetCredsFromEnv() *view.DbCredentials
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) GetSystemInfo() *view.SystemInfo {
	return &view.SystemInfo{
		BackendVersion: g.GetBackendVersion(),
		ProductionMode: g.IsProductionMode(),
	}
}

func (g systemInfoServiceImpl) Init() error {
	g.setBasePath()
	if err := g.setProductionMode(); err != nil {
		return err
	}
	g.setBackendVersion()
	g.setLogLevel()
	g.setListenAddress()
	g.setOriginAllowed()
	g.setPGHost()
	if err := g.setPGPort(); err != nil {
		return err
	}
	g.setPGDB()
	g.setPGUser()
	g.setPGPassword()
	g.setPGSSLMode()
	if err := g.setSessionTTLMinutes(); err != nil {
		return err
	}
	g.applyCredentialsFile()

	return nil
}

func (g systemInfoServiceImpl) setBasePath() {
	g.systemInfoMap[BASE_PATH] = os.Getenv(BASE_PATH)
	if g.systemInfoMap[BASE_PATH] == "" {
		g.systemInfoMap[BASE_PATH] = "."
	}
}

func (g systemInfoServiceImpl) setProductionMode() error {
	envVal := os.Getenv(PRODUCTION_MODE)
	if envVal == "" {
		envVal = "false"
	}
	productionMode, err := strconv.ParseBool(envVal)
	if err != nil {
		return fmt.Errorf("failed to parse %v env value: %v", PRODUCTION_MODE, err.Error())
	}
	g.systemInfoMap[PRODUCTION_MODE] = productionMode
	return nil
}

func (g systemInfoServiceImpl) setBackendVersion() {
	version := os.Getenv(PANDAMONIUM_BACKEND_VERSION)
	if version == "" {
		version = "unknown"
	}
	g.systemInfoMap[PANDAMONIUM_BACKEND_VERSION] = version
}

func (g systemInfoServiceImpl) setLogLevel() {
	g.systemInfoMap[LOG_LEVEL] = os.Getenv(LOG_LEVEL)
}

func (g systemInfoServiceImpl) setListenAddress() {
	g.systemInfoMap[LISTEN_ADDRESS] = os.Getenv(LISTEN_ADDRESS)
	if g.systemInfoMap[LISTEN_ADDRESS] == "" {
		g.systemInfoMap[LISTEN_ADDRESS] = ":8080"
	}
}

func (g systemInfoServiceImpl) setOriginAllowed() {
	g.systemInfoMap[ORIGIN_ALLOWED] = os.Getenv(ORIGIN_ALLOWED)
}

func (g systemInfoServiceImpl) setPGHost() {
	g.systemInfoMap[PANDAMONIUM_POSTGRESQL_HOST] = os.Getenv(PANDAMONIUM_POSTGRESQL_HOST)
	if g.systemInfoMap[PANDAMONIUM_POSTGRESQL_HOST] == "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_HOST] = "localhost"
	}
}

func (g systemInfoServiceImpl) setPGPort() error {
	port := 5432
	envVal := os.Getenv(PANDAMONIUM_POSTGRESQL_PORT)
	if envVal != "" {
		var err error
		port, err = strconv.Atoi(envVal)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %v", PANDAMONIUM_POSTGRESQL_PORT, err.Error())
		}
	}
	g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PORT] = port
	return nil
}

func (g systemInfoServiceImpl) setPGDB() {
	g.systemInfoMap[PANDAMONIUM_POSTGRESQL_DB_NAME] = os.Getenv(PANDAMONIUM_POSTGRESQL_DB_NAME)
	if g.systemInfoMap[PANDAMONIUM_POSTGRESQL_DB_NAME] == "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_DB_NAME] = "pandamonium"
	}
}

func (g systemInfoServiceImpl) setPGUser() {
	g.systemInfoMap[PANDAMONIUM_POSTGRESQL_USERNAME] = os.Getenv(PANDAMONIUM_POSTGRESQL_USERNAME)
	if g.systemInfoMap[PANDAMONIUM_POSTGRESQL_USERNAME] == "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_USERNAME] = "pandamonium"
	}
}

func (g systemInfoServiceImpl) setPGPassword() {
	g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PASSWORD] = os.Getenv(PANDAMONIUM_POSTGRESQL_PASSWORD)
}

func (g systemInfoServiceImpl) setPGSSLMode() {
	g.systemInfoMap[PG_SSL_MODE] = os.Getenv(PG_SSL_MODE)
	if g.systemInfoMap[PG_SSL_MODE] == "" {
		g.systemInfoMap[PG_SSL_MODE] = "disable"
	}
}

func (g systemInfoServiceImpl) setSessionTTLMinutes() error {
	ttl := 60 * 24
	envVal := os.Getenv(SESSION_TTL_MINUTES)
	if envVal != "" {
		var err error
		ttl, err = strconv.Atoi(envVal)
		if err != nil {
			return fmt.Errorf("failed to parse %v env value: %v", SESSION_TTL_MINUTES, err.Error())
		}
	}
	g.systemInfoMap[SESSION_TTL_MINUTES] = ttl
	return nil
}

// applyCredentialsFile overrides DB credentials from a yaml file when
// DB_CREDENTIALS_FILE points to one. Envs stay authoritative for everything
// the file does not set.
func (g systemInfoServiceImpl) applyCredentialsFile() {
	path := os.Getenv(DB_CREDENTIALS_FILE)
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Failed to read db credentials file %s: %s", path, err.Error())
		return
	}
	var creds view.DbCredentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		log.Warnf("Failed to parse db credentials file %s: %s", path, err.Error())
		return
	}
	if creds.Host != "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_HOST] = creds.Host
	}
	if creds.Port != 0 {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PORT] = creds.Port
	}
	if creds.Database != "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_DB_NAME] = creds.Database
	}
	if creds.Username != "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_USERNAME] = creds.Username
	}
	if creds.Password != "" {
		g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PASSWORD] = creds.Password
	}
	if creds.SSLMode != "" {
		g.systemInfoMap[PG_SSL_MODE] = creds.SSLMode
	}
}

func (g systemInfoServiceImpl) GetBasePath() string {
	return g.systemInfoMap[BASE_PATH].(string)
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.systemInfoMap[PRODUCTION_MODE].(bool)
}

func (g systemInfoServiceImpl) GetBackendVersion() string {
	return g.systemInfoMap[PANDAMONIUM_BACKEND_VERSION].(string)
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) GetPGHost() string {
	return g.systemInfoMap[PANDAMONIUM_POSTGRESQL_HOST].(string)
}

func (g systemInfoServiceImpl) GetPGPort() int {
	return g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PORT].(int)
}

func (g systemInfoServiceImpl) GetPGDB() string {
	return g.systemInfoMap[PANDAMONIUM_POSTGRESQL_DB_NAME].(string)
}

func (g systemInfoServiceImpl) GetPGUser() string {
	return g.systemInfoMap[PANDAMONIUM_POSTGRESQL_USERNAME].(string)
}

func (g systemInfoServiceImpl) GetPGPassword() string {
	return g.systemInfoMap[PANDAMONIUM_POSTGRESQL_PASSWORD].(string)
}

func (g systemInfoServiceImpl) GetPGSSLMode() string {
	return g.systemInfoMap[PG_SSL_MODE].(string)
}

func (g systemInfoServiceImpl) GetSessionTTLMinutes() int {
	return g.systemInfoMap[SESSION_TTL_MINUTES].(int)
}

func (g systemInfoServiceImpl) GetCredsFromEnv() *view.DbCredentials {
	return &view.DbCredentials{
		Host:     g.GetPGHost(),
		Port:     g.GetPGPort(),
		Database: g.GetPGDB(),
		Username: g.GetPGUser(),
		Password: g.GetPGPassword(),
		SSLMode:  g.GetPGSSLMode(),
	}
}
