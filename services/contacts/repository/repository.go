package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contacts/domain"
)

// storeErr wraps driver-level faults so the delivery layer can classify
// them as retryable infrastructure errors.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

// personExists confirms the owning person row is present before a child
// mutation is attempted.
func personExists(tx *gorm.DB, personID int) error {
	var person domain.Person
	err := tx.Select("person_id").Where("person_id = ?", personID).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: "person", Key: fmt.Sprint(personID)}
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}
