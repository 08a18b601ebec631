package usecase

import (
	"context"
	"time"

	"contacts/domain"
)

type personUseCase struct {
	repo    domain.PersonRepo
	TimeOut time.Duration
}

func NewPersonUseCase(repo domain.PersonRepo, to time.Duration) domain.PersonUseCase {
	return &personUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (pu *personUseCase) GetAllPersons(ctx context.Context, opts domain.ListOptions) ([]domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetAllPersons(ctx, opts)
}

func (pu *personUseCase) GetPerson(ctx context.Context, personID int) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetPerson(ctx, personID)
}

func (pu *personUseCase) CreatePersons(ctx context.Context, persons []domain.Person) (*domain.BulkAddResult, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.CreatePersons(ctx, persons)
}

func (pu *personUseCase) UpdatePerson(ctx context.Context, personID int, person *domain.Person) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.UpdatePerson(ctx, personID, person)
}

func (pu *personUseCase) DeletePerson(ctx context.Context, personID int) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.DeletePerson(ctx, personID)
}
