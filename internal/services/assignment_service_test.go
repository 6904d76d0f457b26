package services

import (
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/testutil"
)

func (s *ServiceTestSuite) TestCreateFor_Self() {
	user := testutil.CreateUser(s.T(), s.db, "clint", models.RoleUser)

	task, err := s.assignments.CreateFor(s.ctx, user.ID, models.RoleUser, nil, TaskInput{Title: "Practice archery"})
	s.Require().NoError(err)

	stored := s.reload(task.ID)
	s.Equal(user.ID, stored.OwnerID)
	s.Nil(stored.AssignedByID)
}

func (s *ServiceTestSuite) TestCreateFor_SelfAfterAccountRemoved() {
	user := testutil.CreateUser(s.T(), s.db, "clint", models.RoleUser)
	s.Require().NoError(s.users.DeleteUser(s.ctx, models.RoleAdmin, user.ID))

	_, err := s.assignments.CreateFor(s.ctx, user.ID, models.RoleUser, nil, TaskInput{Title: "Practice archery"})
	s.ErrorIs(err, ErrAccountRemoved)
	s.ErrorIs(err, ErrUnauthenticated)

	var count int64
	s.Require().NoError(s.db.Model(&models.Task{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	s.Zero(count)
}

func (s *ServiceTestSuite) TestCreateFor_AdminTargetsUser() {
	user := testutil.CreateUser(s.T(), s.db, "clint", models.RoleUser)
	target := user.ID

	task, err := s.assignments.CreateFor(s.ctx, s.admin.ID, models.RoleAdmin, &target, TaskInput{
		Title:    "Scout the base",
		Priority: models.PriorityHigh,
	})
	s.Require().NoError(err)

	stored := s.reload(task.ID)
	s.Equal(user.ID, stored.OwnerID)
	s.Require().NotNil(stored.AssignedByID)
	s.Equal(s.admin.ID, *stored.AssignedByID)
	s.Equal(models.PriorityHigh, stored.Priority)
}

func (s *ServiceTestSuite) TestCreateFor_NonAdminCannotTarget() {
	caller := testutil.CreateUser(s.T(), s.db, "loki", models.RoleUser)
	victim := testutil.CreateUser(s.T(), s.db, "thor", models.RoleUser)
	target := victim.ID

	_, err := s.assignments.CreateFor(s.ctx, caller.ID, models.RoleUser, &target, TaskInput{Title: "Mischief"})
	s.ErrorIs(err, ErrAdminRequired)
	s.ErrorIs(err, ErrForbidden)
}

func (s *ServiceTestSuite) TestCreateFor_UnknownTarget() {
	target := uint64(999)

	_, err := s.assignments.CreateFor(s.ctx, s.admin.ID, models.RoleAdmin, &target, TaskInput{Title: "Ghost"})
	s.ErrorIs(err, ErrAssigneeNotFound)
	s.ErrorIs(err, ErrValidation)
}

func (s *ServiceTestSuite) TestReassign_OnlyOwnershipChanges() {
	from := testutil.CreateUser(s.T(), s.db, "wanda", models.RoleUser)
	to := testutil.CreateUser(s.T(), s.db, "vision", models.RoleUser)
	task := testutil.CreateCompletedTask(s.T(), s.db, "Guard the stone", from.ID, time.Now().Add(-time.Hour))
	s.Require().NoError(s.db.Model(task).Updates(map[string]interface{}{
		"description": "Keep it safe",
		"priority":    models.PriorityUrgent,
		"column_type": models.ColumnProgress,
	}).Error)
	before := s.reload(task.ID)

	err := s.assignments.Reassign(s.ctx, task.ID, to.ID, s.admin.ID, models.RoleAdmin)
	s.Require().NoError(err)

	after := s.reload(task.ID)
	s.Equal(to.ID, after.OwnerID)
	s.Require().NotNil(after.AssignedByID)
	s.Equal(s.admin.ID, *after.AssignedByID)

	s.Equal(before.Title, after.Title)
	s.Equal(before.Description, after.Description)
	s.Equal(before.Priority, after.Priority)
	s.Equal(before.Column, after.Column)
	s.Equal(before.Status, after.Status)
	s.True(before.CreatedAt.Equal(after.CreatedAt))
	s.Require().NotNil(after.CompletedAt)
	s.True(before.CompletedAt.Equal(*after.CompletedAt))
}

func (s *ServiceTestSuite) TestReassign_ForbiddenForNonAdminOwner() {
	owner := testutil.CreateUser(s.T(), s.db, "wanda", models.RoleUser)
	other := testutil.CreateUser(s.T(), s.db, "vision", models.RoleUser)
	task := testutil.CreateTask(s.T(), s.db, "Guard the stone", owner.ID)

	err := s.assignments.Reassign(s.ctx, task.ID, other.ID, owner.ID, models.RoleUser)
	s.ErrorIs(err, ErrForbidden)
	s.Equal(owner.ID, s.reload(task.ID).OwnerID)
}

func (s *ServiceTestSuite) TestReassign_Validation() {
	owner := testutil.CreateUser(s.T(), s.db, "wanda", models.RoleUser)
	task := testutil.CreateTask(s.T(), s.db, "Guard the stone", owner.ID)

	err := s.assignments.Reassign(s.ctx, task.ID, 0, s.admin.ID, models.RoleAdmin)
	s.ErrorIs(err, ErrAssigneeRequired)

	err = s.assignments.Reassign(s.ctx, task.ID, 777, s.admin.ID, models.RoleAdmin)
	s.ErrorIs(err, ErrAssigneeNotFound)
}

func (s *ServiceTestSuite) TestReassign_MissingTask() {
	user := testutil.CreateUser(s.T(), s.db, "wanda", models.RoleUser)

	err := s.assignments.Reassign(s.ctx, 404, user.ID, s.admin.ID, models.RoleAdmin)
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *ServiceTestSuite) TestReassign_NewOwnerCanEditOldOwnerCannot() {
	from := testutil.CreateUser(s.T(), s.db, "wanda", models.RoleUser)
	to := testutil.CreateUser(s.T(), s.db, "vision", models.RoleUser)
	task := testutil.CreateTask(s.T(), s.db, "Guard the stone", from.ID)

	s.Require().NoError(s.assignments.Reassign(s.ctx, task.ID, to.ID, s.admin.ID, models.RoleAdmin))

	_, err := s.tasks.Update(s.ctx, task.ID, from.ID, TaskInput{Title: "mine again"})
	s.ErrorIs(err, ErrTaskNotFound)

	_, err = s.tasks.Update(s.ctx, task.ID, to.ID, TaskInput{Title: "Guard it well"})
	s.NoError(err)
}
