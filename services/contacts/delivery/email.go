package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contacts/domain"
	"contacts/validation"
)

type emailHandler struct {
	uc domain.EmailUseCase
}

func NewEmailHandler(app *fiber.App, useCase domain.EmailUseCase) {
	handler := &emailHandler{
		uc: useCase,
	}

	route := app.Group("/api")
	route.Post("/get_emails_list", handler.GetEmailsList)
	route.Post("/get_email", handler.GetEmail)
	route.Put("/add_email", handler.AddEmail)
	route.Patch("/update_email", handler.UpdateEmail)
	route.Delete("/delete_email", handler.DeleteEmail)
}

func (eh *emailHandler) GetEmailsList(c *fiber.Ctx) error {
	opts := domain.ListOptions{}
	if len(c.Body()) > 0 {
		var payload domain.SortPayload
		if err := parseBody(c, &payload); err != nil {
			return respondError(c, "GetEmailsList", "Invalid request body", err)
		}
		if err := validation.Struct(&payload); err != nil {
			return respondError(c, "GetEmailsList", "Invalid sort parameters", err)
		}
		opts = domain.ListOptions{SortedBy: payload.SortedBy, Order: payload.Order}
	}

	emails, err := eh.uc.GetAllEmails(c.Context(), opts)
	if err != nil {
		return respondError(c, "GetEmailsList", "Failed to get emails list", err)
	}

	return respondData(c, "GetEmailsList", fiber.StatusOK, "Emails retrieved successfully", emails)
}

// GetEmail returns every email belonging to the given person.
func (eh *emailHandler) GetEmail(c *fiber.Ctx) error {
	var payload domain.IDPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "GetEmail", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "GetEmail", "Invalid person_id", err)
	}

	personID, err := payload.ID()
	if err != nil {
		return respondError(c, "GetEmail", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	emails, err := eh.uc.GetPersonEmails(c.Context(), personID)
	if err != nil {
		return respondError(c, "GetEmail", "Failed to get person emails", err)
	}

	return respondData(c, "GetEmail", fiber.StatusOK, "Emails retrieved successfully", emails)
}

func (eh *emailHandler) AddEmail(c *fiber.Ctx) error {
	var payload domain.EmailAddPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "AddEmail", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "AddEmail", "Invalid email data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "AddEmail", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	email := &domain.Email{
		EmailAddress: payload.EmailAddress,
		PersonID:     personID,
		EmailType:    payload.EmailType,
	}
	if err := eh.uc.CreateEmail(c.Context(), email); err != nil {
		return respondError(c, "AddEmail", "Failed to add email", err)
	}

	return respondData(c, "AddEmail", fiber.StatusCreated, "Email added successfully", email)
}

func (eh *emailHandler) UpdateEmail(c *fiber.Ctx) error {
	var payload domain.EmailUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "UpdateEmail", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "UpdateEmail", "Invalid email data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "UpdateEmail", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	email := &domain.Email{
		EmailAddress: payload.EmailAddress,
		PersonID:     personID,
		EmailType:    payload.EmailType,
	}
	if err := eh.uc.UpdateEmail(c.Context(), personID, payload.OldEmailAddress, email); err != nil {
		return respondError(c, "UpdateEmail", "Failed to update email", err)
	}

	return respondData(c, "UpdateEmail", fiber.StatusOK, "Email updated successfully", email)
}

func (eh *emailHandler) DeleteEmail(c *fiber.Ctx) error {
	var payload domain.EmailDeletePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "DeleteEmail", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "DeleteEmail", "Invalid email data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "DeleteEmail", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	if err := eh.uc.DeleteEmail(c.Context(), personID, payload.EmailAddress); err != nil {
		return respondError(c, "DeleteEmail", "Failed to delete email", err)
	}

	return respondData(c, "DeleteEmail", fiber.StatusOK, "Email deleted successfully", nil)
}
