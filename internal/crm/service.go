package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"crm-graphql/internal/auth"
	"crm-graphql/internal/kafkax"
)

// Service wraps the entity stores with ownership checks and the stock
// reservation rules. Events and Cache are optional collaborators.
type Service struct {
	Users    UserStore
	Products ProductStore
	Clients  ClientStore
	Orders   OrderStore

	Tokens *auth.Tokens
	Events EventPublisher
	Cache  *redis.Client
	Log    *zap.Logger

	// Name stamped into the producer field of outbound events.
	ServiceName string
}

// requireCaller enforces the ambient-identity contract: every scoped
// operation takes its caller from the request context, never from
// package state.
func (s *Service) requireCaller(ctx context.Context) (*auth.Claims, error) {
	caller, ok := auth.CallerFrom(ctx)
	if !ok {
		return nil, fmt.Errorf("authentication required: %w", ErrForbidden)
	}
	return caller, nil
}

type RegisterUserInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) RegisterUser(ctx context.Context, in RegisterUserInput) (*User, error) {
	existing, err := s.Users.ByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s: %w", in.Email, ErrAlreadyExists)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     in.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		return nil, err
	}
	s.Log.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

// Authenticate checks credentials and issues a signed identity token.
// Missing user and wrong password collapse into the same error kind so
// the response does not leak which emails are registered.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !auth.CheckPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(u.ID, u.Email, u.Name, u.Surname)
}

// CurrentUser decodes a raw token back into the identity claim it
// carries. No store lookup: the claim is the answer.
func (s *Service) CurrentUser(token string) (*auth.Claims, error) {
	return s.Tokens.Verify(token)
}

func (s *Service) publishOrderEvent(eventType string, o *Order) {
	if s.Events == nil {
		return
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: o.ID,
	}
	env.Payload = kafkax.MustMarshal(OrderEventPayload{
		OrderID:  o.ID,
		SellerID: o.SellerID,
		ClientID: o.ClientID,
		Items:    o.Items,
		Total:    o.Total,
		Status:   o.Status,
	})
	s.Events.Publish(PartitionKey(o.ID), kafkax.MustMarshal(env),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
