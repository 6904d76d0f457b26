package services

import (
	"github.com/yukikurage/hero-task-tracker/internal/models"
)

func (s *ServiceTestSuite) TestRegisterAndLogin() {
	user, err := s.auth.Register(s.ctx, RegisterInput{
		Username:    "banner",
		Password:    "hulksmash",
		DisplayName: "Bruce",
	})
	s.Require().NoError(err)
	s.Equal(models.RoleUser, user.Role)

	loggedIn, err := s.auth.Login(s.ctx, LoginInput{Username: "banner", Password: "hulksmash"})
	s.Require().NoError(err)
	s.Equal(user.ID, loggedIn.ID)

	_, err = s.auth.Register(s.ctx, RegisterInput{Username: "banner", Password: "another"})
	s.ErrorIs(err, ErrUsernameTaken)
}

func (s *ServiceTestSuite) TestLogin_InvalidCredentials() {
	_, err := s.auth.Register(s.ctx, RegisterInput{Username: "banner", Password: "hulksmash"})
	s.Require().NoError(err)

	_, err = s.auth.Login(s.ctx, LoginInput{Username: "banner", Password: "wrong-one"})
	s.ErrorIs(err, ErrInvalidCredentials)
	s.ErrorIs(err, ErrUnauthenticated)

	_, err = s.auth.Login(s.ctx, LoginInput{Username: "nobody", Password: "hulksmash"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceTestSuite) TestAuthGetUser() {
	user, err := s.auth.GetUser(s.ctx, s.admin.ID)
	s.Require().NoError(err)
	s.Equal("admin", user.Username)

	_, err = s.auth.GetUser(s.ctx, 4242)
	s.ErrorIs(err, ErrUserNotFound)
}
