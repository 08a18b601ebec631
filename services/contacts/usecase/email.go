package usecase

import (
	"context"
	"time"

	"contacts/domain"
)

type emailUseCase struct {
	repo    domain.EmailRepo
	TimeOut time.Duration
}

func NewEmailUseCase(repo domain.EmailRepo, to time.Duration) domain.EmailUseCase {
	return &emailUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (eu *emailUseCase) GetAllEmails(ctx context.Context, opts domain.ListOptions) ([]domain.Email, error) {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	return eu.repo.GetAllEmails(ctx, opts)
}

func (eu *emailUseCase) GetPersonEmails(ctx context.Context, personID int) ([]domain.Email, error) {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	return eu.repo.GetPersonEmails(ctx, personID)
}

func (eu *emailUseCase) CreateEmail(ctx context.Context, email *domain.Email) error {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	return eu.repo.CreateEmail(ctx, email)
}

func (eu *emailUseCase) UpdateEmail(ctx context.Context, personID int, oldAddress string, email *domain.Email) error {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	return eu.repo.UpdateEmail(ctx, personID, oldAddress, email)
}

func (eu *emailUseCase) DeleteEmail(ctx context.Context, personID int, address string) error {
	ctx, cancel := context.WithTimeout(ctx, eu.TimeOut)
	defer cancel()

	return eu.repo.DeleteEmail(ctx, personID, address)
}
