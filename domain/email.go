package domain

import "context"

type Email struct {
	EmailAddress string `gorm:"column:email_address;type:varchar(254);primaryKey" json:"email_address"`
	PersonID     int    `gorm:"column:person_id;not null" json:"person_id"`
	EmailType    string `gorm:"type:varchar(30);not null" json:"email_type"`
}

func (Email) TableName() string {
	return "emails"
}

type EmailRepo interface {
	GetAllEmails(ctx context.Context, opts ListOptions) ([]Email, error)
	GetPersonEmails(ctx context.Context, personID int) ([]Email, error)
	CreateEmail(ctx context.Context, email *Email) error
	UpdateEmail(ctx context.Context, personID int, oldAddress string, email *Email) error
	DeleteEmail(ctx context.Context, personID int, address string) error
}

type EmailUseCase interface {
	GetAllEmails(ctx context.Context, opts ListOptions) ([]Email, error)
	GetPersonEmails(ctx context.Context, personID int) ([]Email, error)
	CreateEmail(ctx context.Context, email *Email) error
	UpdateEmail(ctx context.Context, personID int, oldAddress string, email *Email) error
	DeleteEmail(ctx context.Context, personID int, address string) error
}
