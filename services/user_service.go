package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/models"
	"github.com/camden-git/pvtheatresbackend/repository"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown login or a
// wrong password alike.
var ErrInvalidCredentials = errors.New("invalid login or password")

const minPasswordLength = 6

type RegisterInput struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserService registers and authenticates editors.
type UserService struct {
	base
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{base{db: db, entity: "user"}}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Login = strings.TrimSpace(in.Login)
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	var created *models.User
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		repo := repository.NewGormUserRepository(tx)

		var problems []string
		if in.Login == "" {
			problems = append(problems, MsgUserLoginRequired)
		}
		if in.Email == "" {
			problems = append(problems, MsgUserEmailRequired)
		} else if _, err := mail.ParseAddress(in.Email); err != nil {
			problems = append(problems, MsgUserEmailInvalid)
		}
		if in.Name == "" {
			problems = append(problems, MsgUserNameRequired)
		}
		if charCount(in.Password) < minPasswordLength {
			problems = append(problems, MsgUserPasswordTooShort)
		}

		if in.Login != "" {
			taken, err := repo.CountByLogin(in.Login)
			if err != nil {
				return err
			}
			if taken > 0 {
				problems = append(problems, MsgUserLoginTaken)
			}
		}
		if in.Email != "" {
			taken, err := repo.CountByEmail(in.Email)
			if err != nil {
				return err
			}
			if taken > 0 {
				problems = append(problems, MsgUserEmailTaken)
			}
		}
		if len(problems) > 0 {
			return invalid(problems...)
		}

		user := &models.User{Login: in.Login, Email: in.Email, Name: in.Name}
		if err := user.SetPassword(in.Password); err != nil {
			return err
		}
		if err := repo.Create(user); err != nil {
			return err
		}
		created = user
		return nil
	})
	if err := s.finish(opAdd, err); err != nil {
		return nil, err
	}
	return created, nil
}

// Authenticate returns the user with this login if the password matches.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	repo := repository.NewGormUserRepository(s.db.WithContext(ctx))
	user, err := repo.GetByLogin(strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &StorageError{Op: "user authenticate", Err: err}
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := repository.NewGormUserRepository(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: s.entity, ID: id}
		}
		return nil, &StorageError{Op: "user get", Err: err}
	}
	return user, nil
}
