package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"contacts/domain"
)

type emailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(database *gorm.DB) domain.EmailRepo {
	return &emailRepository{
		db: database,
	}
}

func (er *emailRepository) GetAllEmails(ctx context.Context, opts domain.ListOptions) ([]domain.Email, error) {
	if err := domain.CheckSortable("emails", opts.SortedBy); err != nil {
		return nil, err
	}

	query := er.db.WithContext(ctx).Model(&domain.Email{})
	if opts.SortedBy != "" {
		order := opts.Order
		if order == "" {
			order = "asc"
		}
		query = query.Order(opts.SortedBy + " " + order)
	}

	var emails []domain.Email
	if err := query.Find(&emails).Error; err != nil {
		return nil, storeErr(err)
	}
	return emails, nil
}

func (er *emailRepository) GetPersonEmails(ctx context.Context, personID int) ([]domain.Email, error) {
	if err := personExists(er.db.WithContext(ctx), personID); err != nil {
		return nil, err
	}

	var emails []domain.Email
	err := er.db.WithContext(ctx).Where("person_id = ?", personID).Find(&emails).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return emails, nil
}

func (er *emailRepository) CreateEmail(ctx context.Context, email *domain.Email) error {
	tx := er.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	if err := personExists(tx, email.PersonID); err != nil {
		tx.Rollback()
		return err
	}

	var existing domain.Email
	err := tx.Where("email_address = ?", email.EmailAddress).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return &domain.ConflictError{Field: "email_address", Value: email.EmailAddress}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Create(email).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Field: "email_address", Value: email.EmailAddress}
		}
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// UpdateEmail matches the existing row by (person_id, old address) and
// replaces both the address and the type.
func (er *emailRepository) UpdateEmail(ctx context.Context, personID int, oldAddress string, email *domain.Email) error {
	tx := er.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	var existing domain.Email
	err := tx.Where("person_id = ? AND email_address = ?", personID, oldAddress).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return &domain.NotFoundError{Entity: "email", Key: oldAddress}
	}
	if err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if email.EmailAddress != oldAddress {
		var duplicate domain.Email
		err := tx.Where("email_address = ?", email.EmailAddress).First(&duplicate).Error
		if err == nil {
			tx.Rollback()
			return &domain.ConflictError{Field: "email_address", Value: email.EmailAddress}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return storeErr(err)
		}
	}

	err = tx.Model(&domain.Email{}).
		Where("person_id = ? AND email_address = ?", personID, oldAddress).
		Updates(map[string]interface{}{
			"email_address": email.EmailAddress,
			"email_type":    email.EmailType,
		}).Error
	if err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (er *emailRepository) DeleteEmail(ctx context.Context, personID int, address string) error {
	tx := er.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	var existing domain.Email
	err := tx.Where("person_id = ? AND email_address = ?", personID, address).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return &domain.NotFoundError{Entity: "email", Key: address}
	}
	if err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Where("person_id = ? AND email_address = ?", personID, address).Delete(&domain.Email{}).Error; err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}
