package usecase

import (
	"context"
	"time"

	"contacts/domain"
)

type phoneUseCase struct {
	repo    domain.PhoneRepo
	TimeOut time.Duration
}

func NewPhoneUseCase(repo domain.PhoneRepo, to time.Duration) domain.PhoneUseCase {
	return &phoneUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (pu *phoneUseCase) GetAllPhones(ctx context.Context, opts domain.ListOptions) ([]domain.Phone, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetAllPhones(ctx, opts)
}

func (pu *phoneUseCase) GetPersonPhones(ctx context.Context, personID int) ([]domain.Phone, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.GetPersonPhones(ctx, personID)
}

func (pu *phoneUseCase) CreatePhone(ctx context.Context, phone *domain.Phone) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.CreatePhone(ctx, phone)
}

func (pu *phoneUseCase) UpdatePhone(ctx context.Context, personID int, oldNumber string, phone *domain.Phone) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.UpdatePhone(ctx, personID, oldNumber, phone)
}

func (pu *phoneUseCase) DeletePhone(ctx context.Context, personID int, number string) error {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.repo.DeletePhone(ctx, personID, number)
}
