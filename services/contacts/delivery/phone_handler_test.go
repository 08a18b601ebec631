package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts/domain"
)

func TestAddPhone(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	status, resp := doRequest(t, app, fiber.MethodPut, "/api/add_phone", map[string]interface{}{
		"person_id":    fmt.Sprint(personID),
		"phone_number": "83917654321",
		"phone_type":   "Мобильный",
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, resp.Success)

	_, listResp := doRequest(t, app, fiber.MethodPost, "/api/get_phone",
		map[string]interface{}{"person_id": fmt.Sprint(personID)})
	var phones []domain.Phone
	require.NoError(t, json.Unmarshal(listResp.Data, &phones))
	assert.Len(t, phones, 2)
}

func TestAddPhoneDuplicateConflicts(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	// the round-trip person already owns +7(391)1234567
	status, resp := doRequest(t, app, fiber.MethodPut, "/api/add_phone", map[string]interface{}{
		"person_id":    fmt.Sprint(personID),
		"phone_number": "+7(391)1234567",
		"phone_type":   "Мобильный",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, domain.KindConflict, resp.ErrorKind)
	assert.Contains(t, resp.Error, "+7(391)1234567")
}

func TestAddPhoneUnknownPerson(t *testing.T) {
	app := setupTestApp(t)

	status, resp := doRequest(t, app, fiber.MethodPut, "/api/add_phone", map[string]interface{}{
		"person_id":    "9999",
		"phone_number": "83917654321",
		"phone_type":   "Мобильный",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.KindNotFound, resp.ErrorKind)
}

func TestAddPhoneInvalidNumber(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	status, resp := doRequest(t, app, fiber.MethodPut, "/api/add_phone", map[string]interface{}{
		"person_id":    fmt.Sprint(personID),
		"phone_number": "12345",
		"phone_type":   "Мобильный",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.KindValidationFailed, resp.ErrorKind)
	assert.Contains(t, resp.Error, "phone_number")
}

func TestUpdatePhone(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	status, resp := doRequest(t, app, fiber.MethodPatch, "/api/update_phone", map[string]interface{}{
		"person_id":        fmt.Sprint(personID),
		"old_phone_number": "+7(391)1234567",
		"phone_number":     "83917654321",
		"phone_type":       "Мобильный",
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)

	_, listResp := doRequest(t, app, fiber.MethodPost, "/api/get_phone",
		map[string]interface{}{"person_id": fmt.Sprint(personID)})
	var phones []domain.Phone
	require.NoError(t, json.Unmarshal(listResp.Data, &phones))
	require.Len(t, phones, 1)
	assert.Equal(t, "83917654321", phones[0].PhoneNumber)
	assert.Equal(t, "Мобильный", phones[0].PhoneType)
}

func TestUpdatePhoneNotFoundForPerson(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	status, resp := doRequest(t, app, fiber.MethodPatch, "/api/update_phone", map[string]interface{}{
		"person_id":        fmt.Sprint(personID),
		"old_phone_number": "83910000000",
		"phone_number":     "83917654321",
		"phone_type":       "Мобильный",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.KindNotFound, resp.ErrorKind)
}

func TestDeletePhone(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	status, resp := doRequest(t, app, fiber.MethodDelete, "/api/delete_phone", map[string]interface{}{
		"person_id":    fmt.Sprint(personID),
		"phone_number": "+7(391)1234567",
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)

	_, listResp := doRequest(t, app, fiber.MethodPost, "/api/get_phone",
		map[string]interface{}{"person_id": fmt.Sprint(personID)})
	var phones []domain.Phone
	require.NoError(t, json.Unmarshal(listResp.Data, &phones))
	assert.Empty(t, phones)
}

func TestGetPhonesListSorted(t *testing.T) {
	app := setupTestApp(t)
	personID := addPerson(t, app)

	_, _ = doRequest(t, app, fiber.MethodPut, "/api/add_phone", map[string]interface{}{
		"person_id":    fmt.Sprint(personID),
		"phone_number": "83910000001",
		"phone_type":   "Мобильный",
	})

	status, resp := doRequest(t, app, fiber.MethodPost, "/api/get_phones_list",
		map[string]interface{}{"sorted_by": "phone_number", "order": "desc"})
	require.Equal(t, http.StatusOK, status)

	var phones []domain.Phone
	require.NoError(t, json.Unmarshal(resp.Data, &phones))
	require.Len(t, phones, 2)
	assert.Equal(t, "83910000001", phones[0].PhoneNumber)
}
