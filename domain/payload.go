package domain

import "strconv"

// Request payloads. Format rules are declared through `valid` tags: the
// contact_* validators are registered by the validation package from its
// rule table, the enum checks use govalidator's in(...) matcher.

type SortPayload struct {
	SortedBy string `json:"sorted_by" valid:"optional"`
	Order    string `json:"order" valid:"in(asc|desc)~Значение атрибута order должно соответствовать одному из вариантов - asc или desc,optional"`
}

type IDPayload struct {
	PersonID string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
}

func (p IDPayload) ID() (int, error) {
	return strconv.Atoi(p.PersonID)
}

type PersonPayload struct {
	FilePath string         `json:"file_path" valid:"required~Missing required field: file_path,contact_file_path~Неверный формат атрибута file_path"`
	FullName string         `json:"full_name" valid:"required~Missing required field: full_name,contact_full_name~Неверный формат атрибута full_name"`
	Gender   string         `json:"gender" valid:"required~Missing required field: gender,in(Мужской|Женский)~Значение атрибута gender должно соответствовать одному из вариантов - Мужской или Женский"`
	Birthday string         `json:"birthday" valid:"required~Missing required field: birthday,contact_birthday~Неверный формат атрибута birthday"`
	Address  string         `json:"address" valid:"required~Missing required field: address,contact_address~Неверный формат атрибута address"`
	Phones   []PhonePayload `json:"phones"`
	Emails   []EmailPayload `json:"emails"`
}

// ToPerson builds the entity graph a person insert persists. The birthday
// string has already passed the format rule, so a parse failure here means
// an impossible calendar date slipped through and is reported as such.
func (p *PersonPayload) ToPerson() (*Person, error) {
	birthday, err := ParseDate(p.Birthday)
	if err != nil {
		return nil, &ValidationError{Field: "birthday", Expect: "date in YYYY-MM-DD format", Received: p.Birthday}
	}
	person := &Person{
		FilePath: p.FilePath,
		FullName: p.FullName,
		Gender:   p.Gender,
		Birthday: birthday,
		Address:  p.Address,
	}
	for _, phone := range p.Phones {
		person.Phones = append(person.Phones, Phone{
			PhoneNumber: phone.PhoneNumber,
			PhoneType:   phone.PhoneType,
		})
	}
	for _, email := range p.Emails {
		person.Emails = append(person.Emails, Email{
			EmailAddress: email.EmailAddress,
			EmailType:    email.EmailType,
		})
	}
	return person, nil
}

type PersonUpdatePayload struct {
	PersonID string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	FilePath string `json:"file_path" valid:"required~Missing required field: file_path,contact_file_path~Неверный формат атрибута file_path"`
	FullName string `json:"full_name" valid:"required~Missing required field: full_name,contact_full_name~Неверный формат атрибута full_name"`
	Gender   string `json:"gender" valid:"required~Missing required field: gender,in(Мужской|Женский)~Значение атрибута gender должно соответствовать одному из вариантов - Мужской или Женский"`
	Birthday string `json:"birthday" valid:"required~Missing required field: birthday,contact_birthday~Неверный формат атрибута birthday"`
	Address  string `json:"address" valid:"required~Missing required field: address,contact_address~Неверный формат атрибута address"`
}

func (p *PersonUpdatePayload) ToPerson() (*Person, error) {
	base := PersonPayload{
		FilePath: p.FilePath,
		FullName: p.FullName,
		Gender:   p.Gender,
		Birthday: p.Birthday,
		Address:  p.Address,
	}
	return base.ToPerson()
}

type PhonePayload struct {
	PhoneNumber string `json:"phone_number" valid:"required~Missing required field: phone_number,contact_phone_number~Неверный формат атрибута phone_number"`
	PhoneType   string `json:"phone_type" valid:"required~Missing required field: phone_type,in(Городской|Мобильный)~Значение атрибута phone_type должно соответствовать одному из вариантов - Городской или Мобильный"`
}

type PhoneAddPayload struct {
	PersonID    string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	PhoneNumber string `json:"phone_number" valid:"required~Missing required field: phone_number,contact_phone_number~Неверный формат атрибута phone_number"`
	PhoneType   string `json:"phone_type" valid:"required~Missing required field: phone_type,in(Городской|Мобильный)~Значение атрибута phone_type должно соответствовать одному из вариантов - Городской или Мобильный"`
}

type PhoneUpdatePayload struct {
	PersonID       string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	OldPhoneNumber string `json:"old_phone_number" valid:"required~Missing required field: old_phone_number,contact_phone_number~Неверный формат атрибута old_phone_number"`
	PhoneNumber    string `json:"phone_number" valid:"required~Missing required field: phone_number,contact_phone_number~Неверный формат атрибута phone_number"`
	PhoneType      string `json:"phone_type" valid:"required~Missing required field: phone_type,in(Городской|Мобильный)~Значение атрибута phone_type должно соответствовать одному из вариантов - Городской или Мобильный"`
}

type PhoneDeletePayload struct {
	PersonID    string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	PhoneNumber string `json:"phone_number" valid:"required~Missing required field: phone_number,contact_phone_number~Неверный формат атрибута phone_number"`
	PhoneType   string `json:"phone_type" valid:"in(Городской|Мобильный)~Значение атрибута phone_type должно соответствовать одному из вариантов - Городской или Мобильный,optional"`
}

type EmailAddPayload struct {
	PersonID     string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	EmailAddress string `json:"email_address" valid:"required~Missing required field: email_address,contact_email_address~Неверный формат атрибута email_address"`
	EmailType    string `json:"email_type" valid:"required~Missing required field: email_type,in(Личная|Рабочая)~Значение атрибута email_type должно соответствовать одному из вариантов - Личная или Рабочая"`
}

type EmailPayload struct {
	EmailAddress string `json:"email_address" valid:"required~Missing required field: email_address,contact_email_address~Неверный формат атрибута email_address"`
	EmailType    string `json:"email_type" valid:"required~Missing required field: email_type,in(Личная|Рабочая)~Значение атрибута email_type должно соответствовать одному из вариантов - Личная или Рабочая"`
}

type EmailUpdatePayload struct {
	PersonID        string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	OldEmailAddress string `json:"old_email_address" valid:"required~Missing required field: old_email_address,contact_email_address~Неверный формат атрибута old_email_address"`
	EmailAddress    string `json:"email_address" valid:"required~Missing required field: email_address,contact_email_address~Неверный формат атрибута email_address"`
	EmailType       string `json:"email_type" valid:"required~Missing required field: email_type,in(Личная|Рабочая)~Значение атрибута email_type должно соответствовать одному из вариантов - Личная или Рабочая"`
}

type EmailDeletePayload struct {
	PersonID     string `json:"person_id" valid:"required~Missing required field: person_id,contact_person_id~Значение атрибута person_id должно быть числовым"`
	EmailAddress string `json:"email_address" valid:"required~Missing required field: email_address,contact_email_address~Неверный формат атрибута email_address"`
	EmailType    string `json:"email_type" valid:"in(Личная|Рабочая)~Значение атрибута email_type должно соответствовать одному из вариантов - Личная или Рабочая,optional"`
}
