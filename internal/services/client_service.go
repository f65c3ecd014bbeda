package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopdesk/internal/domain"
	"shopdesk/internal/store"
	"shopdesk/internal/validate"
)

type ClientService struct {
	crud[string, domain.Client]
	now func() time.Time
}

func NewClientService(st *store.Store[string, domain.Client], pause Delay) *ClientService {
	return &ClientService{
		crud: crud[string, domain.Client]{store: st, pause: pause, fields: domain.Client.SearchFields},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

type ClientForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *ClientService) Create(ctx context.Context, f ClientForm) (domain.Client, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Client{}, err
	}
	var bad []string
	if strings.TrimSpace(f.Name) == "" {
		bad = append(bad, "name")
	}
	email, ok := validate.Email(f.Email)
	if !ok {
		bad = append(bad, "email")
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Client{}, err
	}

	now := s.now()
	c := domain.Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(f.Name),
		Email:     email,
		Phone:     strings.TrimSpace(f.Phone),
		Address:   strings.TrimSpace(f.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Insert(c); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}

type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (s *ClientService) Update(ctx context.Context, id string, patch ClientPatch) (domain.Client, error) {
	if err := s.pause(ctx); err != nil {
		return domain.Client{}, err
	}
	cur, ok := s.store.FindByID(id)
	if !ok {
		return domain.Client{}, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	var bad []string
	if patch.Name != nil {
		cur.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		email, ok := validate.Email(*patch.Email)
		if !ok {
			bad = append(bad, "email")
		} else {
			cur.Email = email
		}
	}
	if patch.Phone != nil {
		cur.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Address != nil {
		cur.Address = strings.TrimSpace(*patch.Address)
	}
	if cur.Name == "" {
		bad = append(bad, "name")
	}
	if err := domain.Invalid(bad...); err != nil {
		return domain.Client{}, err
	}

	cur.UpdatedAt = touch(cur.UpdatedAt, s.now())
	if err := s.store.Replace(id, cur); err != nil {
		return domain.Client{}, err
	}
	return cur, nil
}
