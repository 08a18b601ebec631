package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contacts/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(&domain.Person{}, &domain.Phone{}, &domain.Email{}))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func testPerson(fullName string) *domain.Person {
	birthday, _ := domain.ParseDate("1980-05-01")
	return &domain.Person{
		FilePath: "/media/profile_images/a.jpg",
		FullName: fullName,
		Gender:   "Мужской",
		Birthday: birthday,
		Address:  "Красноярск, Мира, д. 1, кв. 3",
	}
}
