package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contacts/config"
	"contacts/domain"
	"contacts/services/contacts/repository"
	"contacts/services/contacts/usecase"
)

type apiResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	ErrorKind string          `json:"error_kind"`
	Data      json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&domain.Person{}, &domain.Phone{}, &domain.Email{}))

	app := config.NewFiberApp()

	timeout := 5 * time.Second
	NewPersonHandler(app, usecase.NewPersonUseCase(repository.NewPersonRepository(db), timeout))
	NewPhoneHandler(app, usecase.NewPhoneUseCase(repository.NewPhoneRepository(db), timeout))
	NewEmailHandler(app, usecase.NewEmailUseCase(repository.NewEmailRepository(db), timeout))
	NewHealthHandler(app, db)
	RegisterNotFound(app)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func validPersonPayload() map[string]interface{} {
	return map[string]interface{}{
		"file_path": "/media/profile_images/a.jpg",
		"full_name": "Иванов Иван Иванович",
		"gender":    "Мужской",
		"birthday":  "1980-05-01",
		"address":   "Красноярск, Мира, д. 1, кв. 3",
		"phones": []map[string]interface{}{
			{"phone_number": "+7(391)1234567", "phone_type": "Городской"},
		},
		"emails": []map[string]interface{}{
			{"email_address": "ivanov@mail.ru", "email_type": "Личная"},
		},
	}
}

func addPerson(t *testing.T, app *fiber.App) int {
	t.Helper()

	status, resp := doRequest(t, app, fiber.MethodPut, "/api/add_person",
		[]map[string]interface{}{validPersonPayload()})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, resp.Success)

	var result domain.BulkAddResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.Len(t, result.CreatedIDs, 1)

	return result.CreatedIDs[0]
}
