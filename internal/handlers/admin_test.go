package handlers

import (
	"fmt"
	"net/http"

	"github.com/yukikurage/hero-task-tracker/internal/dto"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/testutil"
)

func (suite *HandlerTestSuite) TestAdminRoutes_RequireAdmin() {
	_, cookies := suite.createUser("peter")

	for _, path := range []string{"/api/admin/users", "/api/admin/tasks", "/api/admin/stats", "/api/admin/stats/daily", "/api/admin/stats/users"} {
		w := suite.request(http.MethodGet, path, nil, cookies)
		suite.Equal(http.StatusForbidden, w.Code, path)

		w = suite.request(http.MethodGet, path, nil, nil)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (suite *HandlerTestSuite) TestAdminUsers_CreateAndList() {
	w := suite.request(http.MethodPost, "/api/admin/users", map[string]string{
		"username":     "fury",
		"password":     "eyepatch",
		"display_name": "Nick",
		"role":         "admin",
	}, suite.admin)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created dto.UserDTO
	suite.decode(w, &created)
	suite.Equal(models.RoleAdmin, created.Role)

	w = suite.request(http.MethodPost, "/api/admin/users", map[string]string{
		"username": "fury",
		"password": "eyepatch",
	}, suite.admin)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request(http.MethodPost, "/api/admin/users", map[string]string{
		"username": "odd",
		"password": "eyepatch",
		"role":     "root",
	}, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/admin/users", nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list struct {
		Users []dto.UserDTO `json:"users"`
	}
	suite.decode(w, &list)
	suite.Len(list.Users, 2)
}

func (suite *HandlerTestSuite) TestAdminDeleteUser() {
	idle, _ := suite.createUser("idle")
	busy, _ := suite.createUser("busy")
	testutil.CreateTask(suite.T(), suite.db, "still here", busy.ID)

	w := suite.request(http.MethodDelete, "/api/admin/users/1", nil, suite.admin)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", busy.ID), nil, suite.admin)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", idle.ID), nil, suite.admin)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", idle.ID), nil, suite.admin)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodDelete, "/api/admin/users/zero", nil, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdminDeleteUser_RevokesSession() {
	bob, cookies := suite.createUser("bob")

	w := suite.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", bob.ID), nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.request(http.MethodPost, "/api/tasks", map[string]string{"title": "Orphan"}, cookies)
	suite.Equal(http.StatusUnauthorized, w.Code, w.Body.String())

	w = suite.request(http.MethodGet, "/api/auth/me", nil, cookies)
	suite.Equal(http.StatusUnauthorized, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("owner_id = ?", bob.ID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *HandlerTestSuite) TestAdminDeleteUser_RevokesAdminRights() {
	w := suite.request(http.MethodPost, "/api/admin/users", map[string]string{
		"username": "fury",
		"password": "eyepatch",
		"role":     "admin",
	}, suite.admin)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var fury dto.UserDTO
	suite.decode(w, &fury)
	furyCookies := suite.login("fury", "eyepatch")

	w = suite.request(http.MethodGet, "/api/admin/users", nil, furyCookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", fury.ID), nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.request(http.MethodGet, "/api/admin/users", nil, furyCookies)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestAdminListAllTasks() {
	tony, _ := suite.createUser("tony")
	testutil.CreateTask(suite.T(), suite.db, "Build suit", tony.ID)
	testutil.CreateTask(suite.T(), suite.db, "Admin chores", 1)

	w := suite.request(http.MethodGet, "/api/admin/tasks", nil, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code)

	var list struct {
		Tasks []dto.AdminTaskDTO `json:"tasks"`
	}
	suite.decode(w, &list)
	suite.Require().Len(list.Tasks, 2)

	owners := map[string]string{}
	for _, task := range list.Tasks {
		owners[task.Title] = task.OwnerUsername
	}
	suite.Equal("tony", owners["Build suit"])
	suite.Equal("admin", owners["Admin chores"])
}

func (suite *HandlerTestSuite) TestAdminReassignTask() {
	wanda, wandaCookies := suite.createUser("wanda")
	vision, visionCookies := suite.createUser("vision")
	task := testutil.CreateTask(suite.T(), suite.db, "Guard the stone", wanda.ID)
	url := fmt.Sprintf("/api/admin/tasks/%d/reassign", task.ID)

	w := suite.request(http.MethodPut, url, map[string]uint64{"user_id": vision.ID}, suite.admin)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var reassigned dto.TaskDTO
	suite.decode(w, &reassigned)
	suite.Equal(vision.ID, reassigned.OwnerID)
	suite.Require().NotNil(reassigned.AssignedByID)
	suite.Equal(uint64(1), *reassigned.AssignedByID)
	suite.Equal("Guard the stone", reassigned.Title)

	w = suite.request(http.MethodGet, "/api/tasks", nil, visionCookies)
	var visionTasks taskListResponse
	suite.decode(w, &visionTasks)
	suite.Len(visionTasks.Tasks, 1)

	w = suite.request(http.MethodGet, "/api/tasks", nil, wandaCookies)
	var wandaTasks taskListResponse
	suite.decode(w, &wandaTasks)
	suite.Empty(wandaTasks.Tasks)

	w = suite.request(http.MethodPut, url, map[string]uint64{"user_id": 999}, suite.admin)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPut, "/api/admin/tasks/404/reassign", map[string]uint64{"user_id": vision.ID}, suite.admin)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodPut, url, map[string]uint64{"user_id": wanda.ID}, visionCookies)
	suite.Equal(http.StatusForbidden, w.Code)
}
