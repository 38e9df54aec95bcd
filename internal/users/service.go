package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
	"github.com/ariefcatur/go-user-orders/internal/events"
	"go.uber.org/zap"
)

type Service struct {
	Repo     Repository
	Events   events.Publisher
	Log      *zap.Logger
	Producer string

	// UniqueFields rejects a username or email already used by another
	// user. Off by default.
	UniqueFields bool
}

func (s *Service) Create(ctx context.Context, req *Request) (Response, error) {
	s.Log.Info("creating user")
	if req == nil {
		return Response{}, apperr.Validation("User request cannot be null")
	}
	if err := s.checkUnique(ctx, 0, req); err != nil {
		return Response{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return Response{}, err
	}
	u := User{Username: req.Username, PasswordHash: hash, Email: req.Email}
	if err := s.Repo.Save(ctx, &u); err != nil {
		return Response{}, fmt.Errorf("save user: %w", err)
	}
	s.Log.Info("user created", zap.Int64("user_id", u.ID))
	s.publish(ctx, TopicUserCreated, events.UserCreated, u.ID, Payload{UserID: u.ID, Username: u.Username, Email: u.Email})
	return toResponse(u), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Response, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(u), nil
}

func (s *Service) List(ctx context.Context) ([]Response, error) {
	list, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]Response, 0, len(list))
	for _, u := range list {
		out = append(out, toResponse(u))
	}
	return out, nil
}

func (s *Service) FindByUsername(ctx context.Context, username string) (Response, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return Response{}, apperr.NotFound("User not found with username: %s", username)
	}
	if err != nil {
		return Response{}, fmt.Errorf("find user by username: %w", err)
	}
	return toResponse(u), nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (Response, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Response{}, apperr.NotFound("User not found with email: %s", email)
	}
	if err != nil {
		return Response{}, fmt.Errorf("find user by email: %w", err)
	}
	return toResponse(u), nil
}

// Update overwrites all three fields of user id.
func (s *Service) Update(ctx context.Context, id int64, req *Request) (Response, error) {
	s.Log.Info("updating user", zap.Int64("user_id", id))
	if req == nil {
		return Response{}, apperr.Validation("User request cannot be null")
	}
	u, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	if err := s.checkUnique(ctx, id, req); err != nil {
		return Response{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return Response{}, err
	}
	u.Username, u.PasswordHash, u.Email = req.Username, hash, req.Email
	if err := s.Repo.Save(ctx, &u); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, notFound(id)
		}
		return Response{}, fmt.Errorf("save user %d: %w", id, err)
	}
	s.publish(ctx, TopicUserUpdated, events.UserUpdated, u.ID, Payload{UserID: u.ID, Username: u.Username, Email: u.Email})
	return toResponse(u), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.Log.Info("deleting user", zap.Int64("user_id", id))
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(id)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.publish(ctx, TopicUserDeleted, events.UserDeleted, id, Payload{UserID: id})
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return ok, nil
}

func (s *Service) find(ctx context.Context, id int64) (User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return User{}, notFound(id)
	}
	if err != nil {
		return User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, nil
}

// checkUnique enforces the UniqueFields policy; self is the id of the user
// being updated, or 0 on create.
func (s *Service) checkUnique(ctx context.Context, self int64, req *Request) error {
	if !s.UniqueFields {
		return nil
	}
	if u, err := s.Repo.FindByUsername(ctx, req.Username); err == nil && u.ID != self {
		return apperr.Validation("Username already exists")
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check username: %w", err)
	}
	if u, err := s.Repo.FindByEmail(ctx, req.Email); err == nil && u.ID != self {
		return apperr.Validation("Email already exists")
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, topic, eventType string, id int64, p Payload) {
	if s.Events == nil {
		return
	}
	ev, err := events.New(ctx, eventType, s.Producer, id, p)
	if err != nil {
		s.Log.Error("build event", zap.String("type", eventType), zap.Error(err))
		return
	}
	s.Events.Publish(topic, events.Key(id), ev)
}

func notFound(id int64) error { return apperr.NotFound("User not found with ID: %d", id) }
