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

package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	ws "github.com/gorilla/websocket"
	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/shaj13/go-guardian/v2/auth"
)

type stubBranchService struct {
	deletedBranchIds []string
}

func (s *stubBranchService) CreateBranch(string, string, view.BranchCreateReq) (*view.Branch, error) {
	return nil, nil
}
func (s *stubBranchService) GetBranch(string) (*view.Branch, error) {
	return nil, nil
}
func (s *stubBranchService) GetBranches(string, string) (*view.Branches, error) {
	return nil, nil
}
func (s *stubBranchService) DeleteBranch(branchId string, _ string) error {
	s.deletedBranchIds = append(s.deletedBranchIds, branchId)
	return nil
}
func (s *stubBranchService) GetBranchForMember(string, string) (*entity.BranchEntity, error) {
	return nil, nil
}

type stubWsBranchService struct {
	activeBranchIds       map[string]bool
	disconnectedBranchIds []string
}

func (s *stubWsBranchService) ConnectToBranch(context.SecurityContext, string, string, *ws.Conn) error {
	return nil
}
func (s *stubWsBranchService) HasActiveBranchSession(branchId string) bool {
	return s.activeBranchIds[branchId]
}
func (s *stubWsBranchService) NotifyBranchUsers(string, interface{}) {}
func (s *stubWsBranchService) DisconnectClients(branchId string) {
	s.disconnectedBranchIds = append(s.disconnectedBranchIds, branchId)
}

func deleteBranchRequest(branchId string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/branches/"+branchId, nil)
	r = auth.RequestWithUser(auth.NewUserInfo("amelie", "11111111-1111-1111-1111-111111111111", nil, nil), r)
	return mux.SetURLVars(r, map[string]string{"branchId": branchId})
}

func TestDeleteBranchDisconnectsSubscribers(t *testing.T) {
	branchId := "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	branchService := &stubBranchService{}
	wsBranchService := &stubWsBranchService{activeBranchIds: map[string]bool{branchId: true}}
	branchController := NewBranchController(branchService, wsBranchService)

	w := httptest.NewRecorder()
	branchController.DeleteBranch(w, deleteBranchRequest(branchId))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}
	if len(branchService.deletedBranchIds) != 1 || branchService.deletedBranchIds[0] != branchId {
		t.Errorf("expected the branch to be deleted, got %v", branchService.deletedBranchIds)
	}
	if len(wsBranchService.disconnectedBranchIds) != 1 || wsBranchService.disconnectedBranchIds[0] != branchId {
		t.Errorf("expected live subscribers of the branch to be disconnected, got %v", wsBranchService.disconnectedBranchIds)
	}
}

func TestDeleteBranchWithoutActiveSession(t *testing.T) {
	branchId := "cccccccc-cccc-cccc-cccc-cccccccccccc"
	branchService := &stubBranchService{}
	wsBranchService := &stubWsBranchService{activeBranchIds: map[string]bool{}}
	branchController := NewBranchController(branchService, wsBranchService)

	w := httptest.NewRecorder()
	branchController.DeleteBranch(w, deleteBranchRequest(branchId))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if len(wsBranchService.disconnectedBranchIds) != 0 {
		t.Errorf("expected no disconnects for a branch without subscribers, got %v", wsBranchService.disconnectedBranchIds)
	}
}
