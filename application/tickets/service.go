package tickets

import (
	"context"
	"errors"

	"booking/common"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service holds the ticket business rules
type Service struct {
	repo      *Repository
	validator *Validator
	log       *zap.Logger
}

// NewService creates a new Service
func NewService(repo *Repository, log *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(),
		log:       log,
	}
}

func (s *Service) List(ctx context.Context) ([]common.Ticket, error) {
	tickets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, common.NewInternalError(MsgFetchFailed, err)
	}
	return tickets, nil
}

// GetByName returns the first ticket named name.
func (s *Service) GetByName(ctx context.Context, name string) (*common.Ticket, error) {
	ticket, err := s.repo.FindFirstByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError(MsgNotFound, ErrTicketNotFound)
	}
	if err != nil {
		return nil, common.NewInternalError(MsgFetchFailed, err)
	}
	return ticket, nil
}

// Create validates the form and inserts it as a new ticket. A taken id is
// reported as a field error both from the pre-check and from the store's
// primary key, so concurrent creates with one id cannot both succeed.
func (s *Service) Create(ctx context.Context, form TicketForm) (*common.Ticket, error) {
	fieldErrors := s.validator.Validate(form)

	if form.ID != "" {
		exists, err := s.repo.ExistsByID(ctx, form.ID)
		if err != nil {
			return nil, common.NewInternalError(MsgCreateFailed, err)
		}
		if exists {
			fieldErrors = append(fieldErrors, FieldError{Field: "id", Message: MsgDuplicateID})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	ticket := &common.Ticket{
		ID:   form.ID,
		Name: form.Name,
		NoHP: form.NoHP,
	}
	if len(form.Extra) > 0 {
		ticket.Extra = datatypes.JSONMap(form.Extra)
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Errors: []FieldError{{Field: "id", Message: MsgDuplicateID}}}
		}
		return nil, common.NewInternalError(MsgCreateFailed, err)
	}

	s.log.Info("ticket created", zap.String("id", ticket.ID), zap.String("name", ticket.Name))
	return ticket, nil
}

// Update rewrites name and nohp of the ticket identified by form.ID. The id
// itself is the lookup key and is not changed, so it must already exist.
func (s *Service) Update(ctx context.Context, form TicketForm) error {
	if fieldErrors := s.validator.Validate(form); len(fieldErrors) > 0 {
		return &ValidationError{Errors: fieldErrors}
	}

	exists, err := s.repo.ExistsByID(ctx, form.ID)
	if err != nil {
		return common.NewInternalError(MsgUpdateFailed, err)
	}
	if !exists {
		return common.NewNotFoundError(MsgNotFound, ErrTicketNotFound)
	}

	if _, err := s.repo.UpdateByID(ctx, form.ID, form.Name, form.NoHP); err != nil {
		return common.NewInternalError(MsgUpdateFailed, err)
	}

	s.log.Info("ticket updated", zap.String("id", form.ID))
	return nil
}

// DeleteByName removes every ticket named name. Matching nothing is not an error.
func (s *Service) DeleteByName(ctx context.Context, name string) (int64, error) {
	deleted, err := s.repo.DeleteByName(ctx, name)
	if err != nil {
		return 0, common.NewInternalError(MsgDeleteFailed, err)
	}

	s.log.Info("tickets deleted", zap.String("name", name), zap.Int64("count", deleted))
	return deleted, nil
}
