package domain

// ListOptions carries optional sorting for list queries. Empty SortedBy
// means insertion order as returned by the store.
type ListOptions struct {
	SortedBy string
	Order    string
}

var sortableFields = map[string]map[string]bool{
	"persons": {
		"person_id": true,
		"file_path": true,
		"full_name": true,
		"gender":    true,
		"birthday":  true,
		"address":   true,
	},
	"phones": {
		"person_id":    true,
		"phone_number": true,
		"phone_type":   true,
	},
	"emails": {
		"person_id":     true,
		"email_address": true,
		"email_type":    true,
	},
}

// CheckSortable rejects sort fields that are not columns of the target
// entity before the store ever sees them.
func CheckSortable(entity, field string) error {
	if field == "" {
		return nil
	}
	if !sortableFields[entity][field] {
		return &UnknownSortFieldError{Entity: entity, Field: field}
	}
	return nil
}
