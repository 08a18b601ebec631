package domain

import "context"

type Phone struct {
	PhoneNumber string `gorm:"column:phone_number;type:varchar(30);primaryKey" json:"phone_number"`
	PersonID    int    `gorm:"column:person_id;not null" json:"person_id"`
	PhoneType   string `gorm:"type:varchar(30);not null" json:"phone_type"`
}

func (Phone) TableName() string {
	return "phones"
}

type PhoneRepo interface {
	GetAllPhones(ctx context.Context, opts ListOptions) ([]Phone, error)
	GetPersonPhones(ctx context.Context, personID int) ([]Phone, error)
	CreatePhone(ctx context.Context, phone *Phone) error
	UpdatePhone(ctx context.Context, personID int, oldNumber string, phone *Phone) error
	DeletePhone(ctx context.Context, personID int, number string) error
}

type PhoneUseCase interface {
	GetAllPhones(ctx context.Context, opts ListOptions) ([]Phone, error)
	GetPersonPhones(ctx context.Context, personID int) ([]Phone, error)
	CreatePhone(ctx context.Context, phone *Phone) error
	UpdatePhone(ctx context.Context, personID int, oldNumber string, phone *Phone) error
	DeletePhone(ctx context.Context, personID int, number string) error
}
