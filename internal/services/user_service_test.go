package services

import (
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/testutil"
)

func (s *ServiceTestSuite) TestEnsureAdmin_Idempotent() {
	s.Equal(models.ProtectedAdminID(), s.admin.ID)
	s.Equal(models.RoleAdmin, s.admin.Role)

	again, err := s.users.EnsureAdmin(s.ctx, "admin", "different-password")
	s.Require().NoError(err)
	s.Equal(models.ProtectedAdminID(), again.ID)

	var count int64
	s.db.Model(&models.User{}).Count(&count)
	s.Equal(int64(1), count)

	// the original password survives a re-seed
	_, err = s.auth.Login(s.ctx, LoginInput{Username: "admin", Password: "admin123"})
	s.NoError(err)
}

func (s *ServiceTestSuite) TestEnsureAdmin_RestoresRole() {
	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", models.ProtectedAdminID()).
		Update("role", models.RoleUser).Error)

	admin, err := s.users.EnsureAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, admin.Role)

	stored, err := s.users.GetUser(s.ctx, models.ProtectedAdminID())
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, stored.Role)
}

func (s *ServiceTestSuite) TestCreateUser() {
	user, err := s.users.CreateUser(s.ctx, CreateUserInput{
		Username:    "  hawkeye ",
		Password:    "arrows!",
		DisplayName: "Clint",
	})
	s.Require().NoError(err)
	s.Equal("hawkeye", user.Username)
	s.Equal(models.RoleUser, user.Role)
	s.NotEqual("arrows!", user.PasswordHash)

	admin, err := s.users.CreateUser(s.ctx, CreateUserInput{
		Username: "fury",
		Password: "eyepatch",
		Role:     models.RoleAdmin,
	})
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, admin.Role)
}

func (s *ServiceTestSuite) TestCreateUser_Validation() {
	_, err := s.users.CreateUser(s.ctx, CreateUserInput{Username: " ", Password: "secret1"})
	s.ErrorIs(err, ErrUsernameRequired)

	_, err = s.users.CreateUser(s.ctx, CreateUserInput{Username: "short", Password: "12345"})
	s.ErrorIs(err, ErrPasswordTooShort)

	_, err = s.users.CreateUser(s.ctx, CreateUserInput{Username: "odd", Password: "secret1", Role: "root"})
	s.ErrorIs(err, ErrInvalidRole)

	_, err = s.users.CreateUser(s.ctx, CreateUserInput{Username: "admin", Password: "secret1"})
	s.ErrorIs(err, ErrUsernameTaken)
	s.ErrorIs(err, ErrConflict)
}

func (s *ServiceTestSuite) TestDeleteUser() {
	user := testutil.CreateUser(s.T(), s.db, "ultron", models.RoleUser)

	s.Require().NoError(s.users.DeleteUser(s.ctx, models.RoleAdmin, user.ID))

	_, err := s.users.GetUser(s.ctx, user.ID)
	s.ErrorIs(err, ErrUserNotFound)

	s.ErrorIs(s.users.DeleteUser(s.ctx, models.RoleAdmin, user.ID), ErrUserNotFound)
}

func (s *ServiceTestSuite) TestDeleteUser_DefaultAdminAlwaysRefused() {
	s.ErrorIs(s.users.DeleteUser(s.ctx, models.RoleAdmin, models.ProtectedAdminID()), ErrProtectedAdmin)
	s.ErrorIs(s.users.DeleteUser(s.ctx, models.RoleUser, models.ProtectedAdminID()), ErrForbidden)

	_, err := s.users.GetUser(s.ctx, models.ProtectedAdminID())
	s.NoError(err)
}

func (s *ServiceTestSuite) TestDeleteUser_RequiresAdmin() {
	user := testutil.CreateUser(s.T(), s.db, "ultron", models.RoleUser)

	s.ErrorIs(s.users.DeleteUser(s.ctx, models.RoleUser, user.ID), ErrAdminRequired)
}

func (s *ServiceTestSuite) TestDeleteUser_RefusedWhileOwningTasks() {
	user := testutil.CreateUser(s.T(), s.db, "ultron", models.RoleUser)
	task := testutil.CreateTask(s.T(), s.db, "Peace in our time", user.ID)

	err := s.users.DeleteUser(s.ctx, models.RoleAdmin, user.ID)
	s.ErrorIs(err, ErrUserHasTasks)
	s.ErrorIs(err, ErrConflict)

	s.Require().NoError(s.assignments.Reassign(s.ctx, task.ID, s.admin.ID, s.admin.ID, models.RoleAdmin))
	s.NoError(s.users.DeleteUser(s.ctx, models.RoleAdmin, user.ID))
}

func (s *ServiceTestSuite) TestListUsers() {
	testutil.CreateUser(s.T(), s.db, "thor", models.RoleUser)

	users, err := s.users.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)
}

func (s *ServiceTestSuite) TestDeleteUser_ClearsAssignerOfAssignedTasks() {
	fury, err := s.users.CreateUser(s.ctx, CreateUserInput{Username: "fury", Password: "eyepatch", Role: models.RoleAdmin})
	s.Require().NoError(err)
	agent := testutil.CreateUser(s.T(), s.db, "coulson", models.RoleUser)
	target := agent.ID

	task, err := s.assignments.CreateFor(s.ctx, fury.ID, models.RoleAdmin, &target, TaskInput{Title: "Assemble the team"})
	s.Require().NoError(err)

	s.Require().NoError(s.users.DeleteUser(s.ctx, models.RoleAdmin, fury.ID))

	stored := s.reload(task.ID)
	s.Equal(agent.ID, stored.OwnerID)
	s.Nil(stored.AssignedByID)

	tasks, err := s.tasks.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Zero(tasks[0].AssignedBy.ID)
}
