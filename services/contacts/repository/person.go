package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contacts/domain"
)

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(database *gorm.DB) domain.PersonRepo {
	return &personRepository{
		db: database,
	}
}

func (pr *personRepository) GetAllPersons(ctx context.Context, opts domain.ListOptions) ([]domain.Person, error) {
	if err := domain.CheckSortable("persons", opts.SortedBy); err != nil {
		return nil, err
	}

	query := pr.db.WithContext(ctx).Model(&domain.Person{})
	if opts.SortedBy != "" {
		order := opts.Order
		if order == "" {
			order = "asc"
		}
		query = query.Order(opts.SortedBy + " " + order)
	}

	var persons []domain.Person
	if err := query.Find(&persons).Error; err != nil {
		return nil, storeErr(err)
	}
	return persons, nil
}

func (pr *personRepository) GetPerson(ctx context.Context, personID int) (*domain.Person, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).
		Preload("Phones").
		Preload("Emails").
		Where("person_id = ?", personID).
		First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &domain.NotFoundError{Entity: "person", Key: fmt.Sprint(personID)}
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &person, nil
}

// CreatePerson inserts the person row together with its nested phones and
// emails as one transaction. A uniqueness conflict on any child rolls the
// whole person back and reports the offending value.
func (pr *personRepository) CreatePerson(ctx context.Context, person *domain.Person) error {
	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	if err := checkUniquePhones(tx, person.Phones); err != nil {
		tx.Rollback()
		return err
	}
	if err := checkUniqueEmails(tx, person.Emails); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Create(person).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Field: "phone_number or email_address", Value: "duplicate key"}
		}
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// CreatePersons attempts each person independently. A conflict in one person
// rolls back that person only; the remaining persons are still processed.
func (pr *personRepository) CreatePersons(ctx context.Context, persons []domain.Person) (*domain.BulkAddResult, error) {
	result := &domain.BulkAddResult{}
	for i := range persons {
		if err := pr.CreatePerson(ctx, &persons[i]); err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				return nil, err
			}
			result.Failures = append(result.Failures, domain.BulkFailure{
				Index:   i + 1,
				Kind:    domain.ErrorKind(err),
				Message: fmt.Sprintf("person %d: %v", i+1, err),
			})
			continue
		}
		result.CreatedIDs = append(result.CreatedIDs, persons[i].PersonID)
	}
	return result, nil
}

// UpdatePerson replaces the person's own scalar fields and leaves the child
// phone and email rows untouched.
func (pr *personRepository) UpdatePerson(ctx context.Context, personID int, person *domain.Person) error {
	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	if err := personExists(tx, personID); err != nil {
		tx.Rollback()
		return err
	}

	err := tx.Model(&domain.Person{}).
		Where("person_id = ?", personID).
		Updates(map[string]interface{}{
			"file_path": person.FilePath,
			"full_name": person.FullName,
			"gender":    person.Gender,
			"birthday":  person.Birthday,
			"address":   person.Address,
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

// DeletePerson removes the person and all of its phones and emails in the
// same transaction, so no orphan child row can survive.
func (pr *personRepository) DeletePerson(ctx context.Context, personID int) error {
	tx := pr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return storeErr(err)
	}

	if err := personExists(tx, personID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("person_id = ?", personID).Delete(&domain.Phone{}).Error; err != nil {
		tx.Rollback()
		return storeErr(err)
	}
	if err := tx.Where("person_id = ?", personID).Delete(&domain.Email{}).Error; err != nil {
		tx.Rollback()
		return storeErr(err)
	}
	if err := tx.Where("person_id = ?", personID).Delete(&domain.Person{}).Error; err != nil {
		tx.Rollback()
		return storeErr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func checkUniquePhones(tx *gorm.DB, phones []domain.Phone) error {
	seen := map[string]bool{}
	for _, phone := range phones {
		if seen[phone.PhoneNumber] {
			return &domain.ConflictError{Field: "phone_number", Value: phone.PhoneNumber}
		}
		seen[phone.PhoneNumber] = true

		var existing domain.Phone
		err := tx.Where("phone_number = ?", phone.PhoneNumber).First(&existing).Error
		if err == nil {
			return &domain.ConflictError{Field: "phone_number", Value: phone.PhoneNumber}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return storeErr(err)
		}
	}
	return nil
}

func checkUniqueEmails(tx *gorm.DB, emails []domain.Email) error {
	seen := map[string]bool{}
	for _, email := range emails {
		if seen[email.EmailAddress] {
			return &domain.ConflictError{Field: "email_address", Value: email.EmailAddress}
		}
		seen[email.EmailAddress] = true

		var existing domain.Email
		err := tx.Where("email_address = ?", email.EmailAddress).First(&existing).Error
		if err == nil {
			return &domain.ConflictError{Field: "email_address", Value: email.EmailAddress}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return storeErr(err)
		}
	}
	return nil
}
