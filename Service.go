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

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pandamonium-social/pandamonium-backend/cache"
	"github.com/pandamonium-social/pandamonium-backend/controller"
	"github.com/pandamonium-social/pandamonium-backend/db"
	"github.com/pandamonium-social/pandamonium-backend/metrics"
	"github.com/pandamonium-social/pandamonium-backend/middleware"
	"github.com/pandamonium-social/pandamonium-backend/repository"
	"github.com/pandamonium-social/pandamonium-backend/security"
	"github.com/pandamonium-social/pandamonium-backend/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var devData bool

var rootCmd = &cobra.Command{
	Use:   "pandamonium-backend",
	Short: "PANDAMONIUM social network backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var resetDbCmd = &cobra.Command{
	Use:   "reset-db",
	Short: "Drop and recreate the PANDAMONIUM database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDbReset(devData)
	},
}

func init() {
	resetDbCmd.Flags().BoolVar(&devData, "dev", false, "seed test data after recreating the schema")
	rootCmd.AddCommand(resetDbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(basePath string, logLevel string) {
	log.SetFormatter(&prefixed.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   basePath + "/logs/pandamonium-backend.log",
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}))

	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			log.Errorf("Failed to parse log level %s, using info: %s", logLevel, err.Error())
			level = log.InfoLevel
		}
		log.SetLevel(level)
	}
}

func runServer() error {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		return fmt.Errorf("failed to read system configuration: %w", err)
	}
	basePath := systemInfoService.GetBasePath()
	setupLogging(basePath, systemInfoService.GetLogLevel())

	creds := systemInfoService.GetCredsFromEnv()
	cp := db.NewConnectionProvider(creds)

	olricProvider, err := cache.NewOlricProvider()
	if err != nil {
		return fmt.Errorf("failed to create olric provider: %w", err)
	}
	eventBus, err := service.NewWsEventBus(olricProvider)
	if err != nil {
		return fmt.Errorf("failed to create ws event bus: %w", err)
	}

	userRepository, err := repository.NewUserRepositoryPG(cp)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	bambooRepository := repository.NewBambooRepositoryPG(cp)
	branchRepository := repository.NewBranchRepositoryPG(cp)
	messageRepository := repository.NewMessageRepositoryPG(cp)
	roleRepository := repository.NewRoleRepositoryPG(cp)

	userService := service.NewUserService(userRepository)
	bambooService := service.NewBambooService(bambooRepository, userService)
	branchService := service.NewBranchService(branchRepository, bambooService)
	messageService := service.NewMessageService(messageRepository, branchService, eventBus)
	roleService := service.NewRoleService(roleRepository, bambooService)
	wsBranchService := service.NewWsBranchService(userService, eventBus)

	if err := security.SetupGoGuardian(systemInfoService); err != nil {
		return fmt.Errorf("failed to setup authentication: %w", err)
	}

	authController := security.NewAuthController(userService, eventBus)
	userController := controller.NewUserController(userService)
	bambooController := controller.NewBambooController(bambooService)
	branchController := controller.NewBranchController(branchService, wsBranchService)
	messageController := controller.NewMessageController(messageService)
	roleController := controller.NewRoleController(roleService)
	branchWSController := controller.NewBranchWSController(branchService, wsBranchService, eventBus)
	systemInfoController := controller.NewSystemInfoController(systemInfoService)

	readyChan := make(chan bool)
	healthController := controller.NewHealthController(readyChan)

	metrics.RegisterAllPrometheusApplicationMetrics()

	r := mux.NewRouter()
	r.Use(middleware.PrometheusMiddleware)

	r.HandleFunc("/api/v1/auth/register", security.NoSecure(authController.Register)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", security.NoSecure(authController.Login)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/logout", security.Secure(authController.Logout)).Methods(http.MethodPost)

	r.HandleFunc("/api/v1/users/me", security.Secure(userController.GetCurrentUserProfile)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/users/me", security.Secure(userController.UpdateUserProfile)).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/users/me/avatar", security.Secure(userController.StoreUserAvatar)).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/users/{userId}", security.Secure(userController.GetUserProfile)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/users/{userId}/avatar", security.Secure(userController.GetUserAvatar)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/users/{userId}/friends", security.Secure(userController.AddFriend)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/users/{userId}/relations", security.Secure(userController.AddRelation)).Methods(http.MethodPost)

	r.HandleFunc("/api/v1/bamboos", security.Secure(bambooController.CreateBamboo)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/bamboos/{bambooId}", security.Secure(bambooController.GetBamboo)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/bamboos/{bambooId}", security.Secure(bambooController.RenameBamboo)).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/bamboos/{bambooId}/join", security.Secure(bambooController.JoinBamboo)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/bamboos/{bambooId}/members", security.Secure(bambooController.GetBambooMembers)).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/bamboos/{bambooId}/branches", security.Secure(branchController.CreateBranch)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/bamboos/{bambooId}/branches", security.Secure(branchController.GetBranches)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/branches/{branchId}", security.Secure(branchController.DeleteBranch)).Methods(http.MethodDelete)

	r.HandleFunc("/api/v1/branches/{branchId}/messages", security.Secure(messageController.SendMessage)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/branches/{branchId}/messages", security.Secure(messageController.GetMessages)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/messages/{messageId}", security.Secure(messageController.EditMessage)).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/messages/{messageId}", security.Secure(messageController.DeleteMessage)).Methods(http.MethodDelete)

	r.HandleFunc("/api/v1/bamboos/{bambooId}/roles", security.Secure(roleController.CreateRole)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/bamboos/{bambooId}/roles", security.Secure(roleController.GetRoles)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/roles/{roleId}", security.Secure(roleController.GetRole)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/roles/{roleId}", security.Secure(roleController.UpdateRole)).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/roles/{roleId}", security.Secure(roleController.DeleteRole)).Methods(http.MethodDelete)

	r.HandleFunc("/ws/v1/branches/{branchId}", security.SecureWebsocket(branchWSController.ConnectToBranch)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/debug/ws/sessions", security.Secure(branchWSController.DebugSessionsLoadBalance)).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/system/info", security.NoSecure(systemInfoController.GetSystemInfo)).Methods(http.MethodGet)
	r.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	r.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)
	r.Path("/metrics").Handler(promhttp.Handler())

	originsOk := handlers.AllowedOrigins([]string{systemInfoService.GetOriginAllowed()})
	headersOk := handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type", "Authorization"})
	methodsOk := handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions})
	credsOk := handlers.AllowCredentials()

	listenAddr := systemInfoService.GetListenAddress()
	srv := &http.Server{
		Handler:      handlers.CORS(originsOk, headersOk, methodsOk, credsOk)(r),
		Addr:         listenAddr,
		WriteTimeout: 300 * time.Second,
		ReadTimeout:  30 * time.Second,
	}

	readyChan <- true
	close(readyChan)

	log.Infof("Starting PANDAMONIUM backend on %s", listenAddr)
	return srv.ListenAndServe()
}

func runDbReset(dev bool) error {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		return fmt.Errorf("failed to read system configuration: %w", err)
	}
	setupLogging(systemInfoService.GetBasePath(), systemInfoService.GetLogLevel())

	cp := db.NewConnectionProvider(systemInfoService.GetCredsFromEnv())
	dbResetService := service.NewDBResetService(cp, systemInfoService.GetBasePath())

	message, err := dbResetService.ResetDatabase(dev)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}
