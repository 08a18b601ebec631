package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts/domain"
)

func TestPhoneRepository_CreateRequiresPerson(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPhoneRepository(db)

	err := repo.CreatePhone(ctx, &domain.Phone{
		PhoneNumber: "83911234567",
		PersonID:    9999,
		PhoneType:   "Мобильный",
	})

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "person", notFound.Entity)
}

func TestPhoneRepository_DuplicateNumberAcrossPersons(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	first := testPerson("Иванов Иван Иванович")
	second := testPerson("Петров Петр Петрович")
	require.NoError(t, personRepo.CreatePerson(ctx, first))
	require.NoError(t, personRepo.CreatePerson(ctx, second))

	require.NoError(t, repo.CreatePhone(ctx, &domain.Phone{
		PhoneNumber: "83911234567",
		PersonID:    first.PersonID,
		PhoneType:   "Городской",
	}))

	err := repo.CreatePhone(ctx, &domain.Phone{
		PhoneNumber: "83911234567",
		PersonID:    second.PersonID,
		PhoneType:   "Мобильный",
	})

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "83911234567", conflict.Value)

	// first person's phone is unaffected
	phones, err := repo.GetPersonPhones(ctx, first.PersonID)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, "Городской", phones[0].PhoneType)
}

func TestPhoneRepository_UpdatePhone(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	person := testPerson("Иванов Иван Иванович")
	require.NoError(t, personRepo.CreatePerson(ctx, person))
	require.NoError(t, repo.CreatePhone(ctx, &domain.Phone{
		PhoneNumber: "83911234567",
		PersonID:    person.PersonID,
		PhoneType:   "Городской",
	}))

	err := repo.UpdatePhone(ctx, person.PersonID, "83911234567", &domain.Phone{
		PhoneNumber: "+7(391)7654321",
		PersonID:    person.PersonID,
		PhoneType:   "Мобильный",
	})
	require.NoError(t, err)

	phones, err := repo.GetPersonPhones(ctx, person.PersonID)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, "+7(391)7654321", phones[0].PhoneNumber)
	assert.Equal(t, "Мобильный", phones[0].PhoneType)
}

func TestPhoneRepository_UpdateMissingPhoneForPerson(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	owner := testPerson("Иванов Иван Иванович")
	owner.Phones = []domain.Phone{{PhoneNumber: "83911234567", PhoneType: "Городской"}}
	other := testPerson("Петров Петр Петрович")
	require.NoError(t, personRepo.CreatePerson(ctx, owner))
	require.NoError(t, personRepo.CreatePerson(ctx, other))

	// the number exists but belongs to a different person
	err := repo.UpdatePhone(ctx, other.PersonID, "83911234567", &domain.Phone{
		PhoneNumber: "83917654321",
		PersonID:    other.PersonID,
		PhoneType:   "Мобильный",
	})

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "phone", notFound.Entity)
}

func TestPhoneRepository_UpdateToTakenNumberConflicts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	person := testPerson("Иванов Иван Иванович")
	person.Phones = []domain.Phone{
		{PhoneNumber: "83911234567", PhoneType: "Городской"},
		{PhoneNumber: "83917654321", PhoneType: "Мобильный"},
	}
	require.NoError(t, personRepo.CreatePerson(ctx, person))

	err := repo.UpdatePhone(ctx, person.PersonID, "83911234567", &domain.Phone{
		PhoneNumber: "83917654321",
		PersonID:    person.PersonID,
		PhoneType:   "Городской",
	})

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "83917654321", conflict.Value)
}

func TestPhoneRepository_DeletePhone(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	person := testPerson("Иванов Иван Иванович")
	person.Phones = []domain.Phone{{PhoneNumber: "83911234567", PhoneType: "Городской"}}
	require.NoError(t, personRepo.CreatePerson(ctx, person))

	require.NoError(t, repo.DeletePhone(ctx, person.PersonID, "83911234567"))

	phones, err := repo.GetPersonPhones(ctx, person.PersonID)
	require.NoError(t, err)
	assert.Empty(t, phones)

	err = repo.DeletePhone(ctx, person.PersonID, "83911234567")
	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestPhoneRepository_SortedList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewPhoneRepository(db)

	person := testPerson("Иванов Иван Иванович")
	person.Phones = []domain.Phone{
		{PhoneNumber: "83917654321", PhoneType: "Мобильный"},
		{PhoneNumber: "83911234567", PhoneType: "Городской"},
	}
	require.NoError(t, personRepo.CreatePerson(ctx, person))

	phones, err := repo.GetAllPhones(ctx, domain.ListOptions{SortedBy: "phone_number", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, phones, 2)
	assert.Equal(t, "83911234567", phones[0].PhoneNumber)

	_, err = repo.GetAllPhones(ctx, domain.ListOptions{SortedBy: "full_name", Order: "asc"})
	var sortErr *domain.UnknownSortFieldError
	require.True(t, errors.As(err, &sortErr))
}

func TestPhoneRepository_GetPersonPhonesMissingPerson(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewPhoneRepository(db)

	_, err := repo.GetPersonPhones(ctx, 9999)
	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "person", notFound.Entity)
}
