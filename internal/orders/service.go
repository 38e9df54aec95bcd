package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
	"github.com/ariefcatur/go-user-orders/internal/events"
	"go.uber.org/zap"
)

// UserChecker answers whether a user exists in the user service. A false
// answer with a nil error means the user is confirmed absent.
type UserChecker interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

type Service struct {
	Repo     Repository
	Users    UserChecker
	Events   events.Publisher
	Log      *zap.Logger
	Producer string // service name stamped on events
}

func (s *Service) Create(ctx context.Context, req *Request) (Response, error) {
	s.Log.Info("creating order")
	if err := Validate(req); err != nil {
		return Response{}, err
	}
	if err := s.requireUser(ctx, *req.UserID); err != nil {
		return Response{}, err
	}

	o := Order{UserID: *req.UserID, Product: *req.Product, Quantity: *req.Quantity, Price: req.Price.Decimal}
	if err := s.Repo.Save(ctx, &o); err != nil {
		return Response{}, fmt.Errorf("save order: %w", err)
	}
	s.Log.Info("order created", zap.Int64("order_id", o.ID))
	s.publish(ctx, TopicOrderCreated, events.OrderCreated, o.ID, toPayload(o))
	return toResponse(o), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Response, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(o), nil
}

func (s *Service) List(ctx context.Context) ([]Response, error) {
	list, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	s.Log.Debug("orders listed", zap.Int("count", len(list)))
	return toResponses(list), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Response, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	list, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders of user %d: %w", userID, err)
	}
	return toResponses(list), nil
}

// Update overwrites all fields of order id. The user service is consulted
// only when the request moves the order to a different user.
func (s *Service) Update(ctx context.Context, id int64, req *Request) (Response, error) {
	s.Log.Info("updating order", zap.Int64("order_id", id))
	if err := Validate(req); err != nil {
		return Response{}, err
	}
	o, err := s.find(ctx, id)
	if err != nil {
		return Response{}, err
	}
	if o.UserID != *req.UserID {
		if err := s.requireUser(ctx, *req.UserID); err != nil {
			return Response{}, err
		}
	}

	o.UserID, o.Product, o.Quantity, o.Price = *req.UserID, *req.Product, *req.Quantity, req.Price.Decimal
	if err := s.Repo.Save(ctx, &o); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Response{}, notFound(id)
		}
		return Response{}, fmt.Errorf("save order %d: %w", id, err)
	}
	s.publish(ctx, TopicOrderUpdated, events.OrderUpdated, o.ID, toPayload(o))
	return toResponse(o), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.Log.Info("deleting order", zap.Int64("order_id", id))
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check order %d: %w", id, err)
	}
	if !ok {
		return notFound(id)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	s.publish(ctx, TopicOrderDeleted, events.OrderDeleted, id, Payload{OrderID: id})
	return nil
}

func (s *Service) find(ctx context.Context, id int64) (Order, error) {
	o, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Order{}, notFound(id)
	}
	if err != nil {
		return Order{}, fmt.Errorf("find order %d: %w", id, err)
	}
	return o, nil
}

// requireUser fails with InvalidReference when the user is confirmed
// absent, and passes remote failures through unchanged.
func (s *Service) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.InvalidReference("User not found with ID: %d", userID)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, topic, eventType string, id int64, payload Payload) {
	if s.Events == nil {
		return
	}
	ev, err := events.New(ctx, eventType, s.Producer, id, payload)
	if err != nil {
		s.Log.Error("build event", zap.String("type", eventType), zap.Error(err))
		return
	}
	s.Events.Publish(topic, events.Key(id), ev)
}

func notFound(id int64) error { return apperr.NotFound("Order not found with ID: %d", id) }

func toResponses(list []Order) []Response {
	out := make([]Response, 0, len(list))
	for _, o := range list {
		out = append(out, toResponse(o))
	}
	return out
}
