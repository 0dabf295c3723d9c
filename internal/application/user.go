package application

import (
	"errors"
	"time"

	"github.com/worklane/worklane-go/internal/api/middleware"
	"github.com/worklane/worklane-go/internal/domain/user"
	"github.com/worklane/worklane-go/internal/repository"
	"github.com/worklane/worklane-go/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) Register(input user.RegisterDTO) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
	}
	return s.Repos.User.CreateUser(&usr)
}

func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(usr.Password, password) {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.Role, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserDTO) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if !utils.CheckPassword(usr.Password, *input.OldPassword) {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = hashed
	}

	if input.Email != nil {
		usr.Email = input.Email
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}

	if err := s.Repos.User.UpdateUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
