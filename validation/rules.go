package validation

import (
	"regexp"
	"strings"
	"time"

	"contacts/domain"
)

// Field format rules, one entry per API attribute. Every rule carries the
// human description of the expected shape so rejections can name the field,
// the expected format and the received value.

var (
	filePathPattern    = regexp.MustCompile(`^/([а-яА-Яa-zA-Z-_]+/)+([а-яА-Яa-zA-Z-_]+)(\.)([a-zA-Z]{3,4})$`)
	fullNamePattern    = regexp.MustCompile(`^[А-ЯЁ][а-яёА-ЯЁ\-]*\s[А-ЯЁ][а-яёА-ЯЁ\-]+(\s[А-ЯЁ][а-яёА-ЯЁ\-]+)?$`)
	addressPattern     = regexp.MustCompile(`^([А-Я][а-яёА-Я\-]+)( +[А-Я][а-яёА-Я\-]+)?, +(\d+(-[яЯ])? +)?([А-Я][а-яёА-Я\-]+)(( +[а-яёА-Я][а-яёА-Я\-]+)|( +[а-я]))*( +\d+(\-)?[а-яёА-Я])?, +д\. +\d+[А-Я]?, +кв\. +\d+$`)
	phoneNumberPattern = regexp.MustCompile(`^((8|\+7))(\(?\d{3}\)?)(\d{7})$`)
	emailPattern       = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.\-]*@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+){1,2}$`)
	birthdayPattern    = regexp.MustCompile(`^(19|20)\d{2}-\d{2}-\d{2}$`)
	personIDPattern    = regexp.MustCompile(`^\d+$`)
)

type Rule struct {
	Pattern *regexp.Regexp
	Enum    []string
	Check   func(string) bool
	Expect  string
}

func (r Rule) Matches(value string) bool {
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return false
	}
	if len(r.Enum) > 0 {
		found := false
		for _, allowed := range r.Enum {
			if value == allowed {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if r.Check != nil && !r.Check(value) {
		return false
	}
	return true
}

var Rules = map[string]Rule{
	"file_path": {
		Pattern: filePathPattern,
		Expect:  "путь в подобном формате - /media/profile_images/profile_photo.jpg",
	},
	"full_name": {
		Pattern: fullNamePattern,
		Expect:  "ФИО в подобном формате - Иванов Иван Иванович",
	},
	"gender": {
		Enum:   []string{"Мужской", "Женский"},
		Expect: "одно из значений - Мужской, Женский",
	},
	"birthday": {
		Pattern: birthdayPattern,
		Check:   validCalendarDate,
		Expect:  "дата в формате YYYY-MM-DD с годом в диапазоне 1900-2099",
	},
	"address": {
		Pattern: addressPattern,
		Expect:  "адрес в подобном формате - Красноярск, Мира, д. 1, кв. 3",
	},
	"phone_number": {
		Pattern: phoneNumberPattern,
		Expect:  "номер в одном из форматов - +7хххххххххх/+7(ххх)ххххххх/8хххххххххх/8(ххх)ххххххх",
	},
	"old_phone_number": {
		Pattern: phoneNumberPattern,
		Expect:  "номер в одном из форматов - +7хххххххххх/+7(ххх)ххххххх/8хххххххххх/8(ххх)ххххххх",
	},
	"phone_type": {
		Enum:   []string{"Городской", "Мобильный"},
		Expect: "одно из значений - Городской, Мобильный",
	},
	"email_address": {
		Pattern: emailPattern,
		Expect:  "адрес электронной почты в подобном формате - ivanov@mail.ru",
	},
	"old_email_address": {
		Pattern: emailPattern,
		Expect:  "адрес электронной почты в подобном формате - ivanov@mail.ru",
	},
	"email_type": {
		Enum:   []string{"Личная", "Рабочая"},
		Expect: "одно из значений - Личная, Рабочая",
	},
	"person_id": {
		Pattern: personIDPattern,
		Expect:  "числовое значение",
	},
	"order": {
		Enum:   []string{"asc", "desc"},
		Expect: "одно из значений - asc, desc",
	},
}

func validCalendarDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// Field checks one raw value against the rule registered for the attribute.
// Unknown attribute names pass: presence of required attributes is enforced
// by the payload tags, not here.
func Field(name, value string) error {
	rule, ok := Rules[name]
	if !ok {
		return nil
	}
	if !rule.Matches(value) {
		return &domain.ValidationError{Field: name, Expect: rule.Expect, Received: value}
	}
	return nil
}

// ruleFor resolves a rule for a possibly nested attribute path such as
// "phones.0.phone_number".
func ruleFor(name string) (Rule, string, bool) {
	parts := strings.Split(name, ".")
	field := parts[len(parts)-1]
	rule, ok := Rules[field]
	return rule, field, ok
}
