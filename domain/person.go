package domain

import "context"

type Person struct {
	PersonID int    `gorm:"column:person_id;primaryKey;autoIncrement" json:"person_id"`
	FilePath string `gorm:"type:varchar(100);not null" json:"file_path"`
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Gender   string `gorm:"type:varchar(30);not null" json:"gender"`
	Birthday Date   `gorm:"type:date;not null" json:"birthday"`
	Address  string `gorm:"not null" json:"address"`
	Phones   []Phone `gorm:"foreignKey:PersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"phones,omitempty"`
	Emails   []Email `gorm:"foreignKey:PersonID;references:PersonID;constraint:OnDelete:CASCADE" json:"emails,omitempty"`
}

func (Person) TableName() string {
	return "persons"
}

// BulkAddResult reports the outcome of a multi-person add. Each person is
// committed or rolled back on its own, so a batch can succeed partially.
type BulkAddResult struct {
	CreatedIDs []int         `json:"created_ids"`
	Failures   []BulkFailure `json:"failures,omitempty"`
}

type BulkFailure struct {
	Index   int    `json:"index"` // 1-based position in the request list
	Kind    string `json:"error_kind"`
	Message string `json:"error"`
}

type PersonRepo interface {
	GetAllPersons(ctx context.Context, opts ListOptions) ([]Person, error)
	GetPerson(ctx context.Context, personID int) (*Person, error)
	CreatePerson(ctx context.Context, person *Person) error
	CreatePersons(ctx context.Context, persons []Person) (*BulkAddResult, error)
	UpdatePerson(ctx context.Context, personID int, person *Person) error
	DeletePerson(ctx context.Context, personID int) error
}

type PersonUseCase interface {
	GetAllPersons(ctx context.Context, opts ListOptions) ([]Person, error)
	GetPerson(ctx context.Context, personID int) (*Person, error)
	CreatePersons(ctx context.Context, persons []Person) (*BulkAddResult, error)
	UpdatePerson(ctx context.Context, personID int, person *Person) error
	DeletePerson(ctx context.Context, personID int) error
}
