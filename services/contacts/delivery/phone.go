package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contacts/domain"
	"contacts/validation"
)

type phoneHandler struct {
	uc domain.PhoneUseCase
}

func NewPhoneHandler(app *fiber.App, useCase domain.PhoneUseCase) {
	handler := &phoneHandler{
		uc: useCase,
	}

	route := app.Group("/api")
	route.Post("/get_phones_list", handler.GetPhonesList)
	route.Post("/get_phone", handler.GetPhone)
	route.Put("/add_phone", handler.AddPhone)
	route.Patch("/update_phone", handler.UpdatePhone)
	route.Delete("/delete_phone", handler.DeletePhone)
}

func (phh *phoneHandler) GetPhonesList(c *fiber.Ctx) error {
	opts := domain.ListOptions{}
	if len(c.Body()) > 0 {
		var payload domain.SortPayload
		if err := parseBody(c, &payload); err != nil {
			return respondError(c, "GetPhonesList", "Invalid request body", err)
		}
		if err := validation.Struct(&payload); err != nil {
			return respondError(c, "GetPhonesList", "Invalid sort parameters", err)
		}
		opts = domain.ListOptions{SortedBy: payload.SortedBy, Order: payload.Order}
	}

	phones, err := phh.uc.GetAllPhones(c.Context(), opts)
	if err != nil {
		return respondError(c, "GetPhonesList", "Failed to get phones list", err)
	}

	return respondData(c, "GetPhonesList", fiber.StatusOK, "Phones retrieved successfully", phones)
}

// GetPhone returns every phone belonging to the given person.
func (phh *phoneHandler) GetPhone(c *fiber.Ctx) error {
	var payload domain.IDPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "GetPhone", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "GetPhone", "Invalid person_id", err)
	}

	personID, err := payload.ID()
	if err != nil {
		return respondError(c, "GetPhone", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	phones, err := phh.uc.GetPersonPhones(c.Context(), personID)
	if err != nil {
		return respondError(c, "GetPhone", "Failed to get person phones", err)
	}

	return respondData(c, "GetPhone", fiber.StatusOK, "Phones retrieved successfully", phones)
}

func (phh *phoneHandler) AddPhone(c *fiber.Ctx) error {
	var payload domain.PhoneAddPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "AddPhone", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "AddPhone", "Invalid phone data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "AddPhone", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	phone := &domain.Phone{
		PhoneNumber: payload.PhoneNumber,
		PersonID:    personID,
		PhoneType:   payload.PhoneType,
	}
	if err := phh.uc.CreatePhone(c.Context(), phone); err != nil {
		return respondError(c, "AddPhone", "Failed to add phone", err)
	}

	return respondData(c, "AddPhone", fiber.StatusCreated, "Phone added successfully", phone)
}

func (phh *phoneHandler) UpdatePhone(c *fiber.Ctx) error {
	var payload domain.PhoneUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "UpdatePhone", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "UpdatePhone", "Invalid phone data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "UpdatePhone", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	phone := &domain.Phone{
		PhoneNumber: payload.PhoneNumber,
		PersonID:    personID,
		PhoneType:   payload.PhoneType,
	}
	if err := phh.uc.UpdatePhone(c.Context(), personID, payload.OldPhoneNumber, phone); err != nil {
		return respondError(c, "UpdatePhone", "Failed to update phone", err)
	}

	return respondData(c, "UpdatePhone", fiber.StatusOK, "Phone updated successfully", phone)
}

func (phh *phoneHandler) DeletePhone(c *fiber.Ctx) error {
	var payload domain.PhoneDeletePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "DeletePhone", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "DeletePhone", "Invalid phone data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "DeletePhone", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	if err := phh.uc.DeletePhone(c.Context(), personID, payload.PhoneNumber); err != nil {
		return respondError(c, "DeletePhone", "Failed to delete phone", err)
	}

	return respondData(c, "DeletePhone", fiber.StatusOK, "Phone deleted successfully", nil)
}
