package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"contacts/domain"
)

type phoneRepository struct {
	db *gorm.DB
}

func NewPhoneRepository(database *gorm.DB) domain.PhoneRepo {
	return &phoneRepository{
		db: database,
	}
}

func (phr *phoneRepository) GetAllPhones(ctx context.Context, opts domain.ListOptions) ([]domain.Phone, error) {
	if err := domain.CheckSortable("phones", opts.SortedBy); err != nil {
		return nil, err
	}

	query := phr.db.WithContext(ctx).Model(&domain.Phone{})
	if opts.SortedBy != "" {
		order := opts.Order
		if order == "" {
			order = "asc"
		}
		query = query.Order(opts.SortedBy + " " + order)
	}

	var phones []domain.Phone
	if err := query.Find(&phones).Error; err != nil {
		return nil, storeErr(err)
	}
	return phones, nil
}

func (phr *phoneRepository) GetPersonPhones(ctx context.Context, personID int) ([]domain.Phone, error) {
	if err := personExists(phr.db.WithContext(ctx), personID); err != nil {
		return nil, err
	}

	var phones []domain.Phone
	err := phr.db.WithContext(ctx).Where("person_id = ?", personID).Find(&phones).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return phones, nil
}

func (phr *phoneRepository) CreatePhone(ctx context.Context, phone *domain.Phone) error {
	tx := phr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	if err := personExists(tx, phone.PersonID); err != nil {
		tx.Rollback()
		return err
	}

	var existing domain.Phone
	err := tx.Where("phone_number = ?", phone.PhoneNumber).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return &domain.ConflictError{Field: "phone_number", Value: phone.PhoneNumber}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Create(phone).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Field: "phone_number", Value: phone.PhoneNumber}
		}
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// UpdatePhone matches the existing row by (person_id, old number) and
// replaces both the number and the type.
func (phr *phoneRepository) UpdatePhone(ctx context.Context, personID int, oldNumber string, phone *domain.Phone) error {
	tx := phr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	var existing domain.Phone
	err := tx.Where("person_id = ? AND phone_number = ?", personID, oldNumber).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return &domain.NotFoundError{Entity: "phone", Key: oldNumber}
	}
	if err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if phone.PhoneNumber != oldNumber {
		var duplicate domain.Phone
		err := tx.Where("phone_number = ?", phone.PhoneNumber).First(&duplicate).Error
		if err == nil {
			tx.Rollback()
			return &domain.ConflictError{Field: "phone_number", Value: phone.PhoneNumber}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return storeErr(err)
		}
	}

	err = tx.Model(&domain.Phone{}).
		Where("person_id = ? AND phone_number = ?", personID, oldNumber).
		Updates(map[string]interface{}{
			"phone_number": phone.PhoneNumber,
			"phone_type":   phone.PhoneType,
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

func (phr *phoneRepository) DeletePhone(ctx context.Context, personID int, number string) error {
	tx := phr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	var existing domain.Phone
	err := tx.Where("person_id = ? AND phone_number = ?", personID, number).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return &domain.NotFoundError{Entity: "phone", Key: number}
	}
	if err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Where("person_id = ? AND phone_number = ?", personID, number).Delete(&domain.Phone{}).Error; err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}
