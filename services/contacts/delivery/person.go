package delivery

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contacts/config"
	"contacts/domain"
	"contacts/validation"
)

type personHandler struct {
	uc domain.PersonUseCase
}

func NewPersonHandler(app *fiber.App, useCase domain.PersonUseCase) {
	handler := &personHandler{
		uc: useCase,
	}

	route := app.Group("/api")
	route.Post("/get_persons_list", handler.GetPersonsList)
	route.Post("/get_person", handler.GetPerson)
	route.Put("/add_person", handler.AddPerson)
	route.Patch("/update_person", handler.UpdatePerson)
	route.Delete("/delete_person", handler.DeletePerson)
}

// GetPersonsList returns every person, sorted when the optional
// {sorted_by, order} payload is present. An empty body means no sorting.
func (ph *personHandler) GetPersonsList(c *fiber.Ctx) error {
	opts := domain.ListOptions{}
	if len(c.Body()) > 0 {
		var payload domain.SortPayload
		if err := parseBody(c, &payload); err != nil {
			return respondError(c, "GetPersonsList", "Invalid request body", err)
		}
		if err := validation.Struct(&payload); err != nil {
			return respondError(c, "GetPersonsList", "Invalid sort parameters", err)
		}
		opts = domain.ListOptions{SortedBy: payload.SortedBy, Order: payload.Order}
	}

	persons, err := ph.uc.GetAllPersons(c.Context(), opts)
	if err != nil {
		return respondError(c, "GetPersonsList", "Failed to get persons list", err)
	}

	return respondData(c, "GetPersonsList", fiber.StatusOK, "Persons retrieved successfully", persons)
}

func (ph *personHandler) GetPerson(c *fiber.Ctx) error {
	var payload domain.IDPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "GetPerson", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "GetPerson", "Invalid person_id", err)
	}

	personID, err := payload.ID()
	if err != nil {
		return respondError(c, "GetPerson", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	person, err := ph.uc.GetPerson(c.Context(), personID)
	if err != nil {
		return respondError(c, "GetPerson", "Failed to get person", err)
	}

	return respondData(c, "GetPerson", fiber.StatusOK, "Person retrieved successfully", person)
}

// AddPerson accepts a list of persons, each optionally carrying nested
// phones and emails. Validation is item-by-item in request order and the
// first invalid item aborts the whole batch; persistence is per-person, so
// a conflict in one person does not prevent the rest from being created.
func (ph *personHandler) AddPerson(c *fiber.Ctx) error {
	var payloads []domain.PersonPayload
	if err := parseBody(c, &payloads); err != nil {
		return respondError(c, "AddPerson", "Invalid request body, expected a list of contacts", err)
	}
	if len(payloads) == 0 {
		return respondError(c, "AddPerson", "Invalid request body",
			fmt.Errorf("%w: expected a non-empty list of contacts", domain.ErrMalformedInput))
	}

	persons := make([]domain.Person, 0, len(payloads))
	for i := range payloads {
		if err := validation.Struct(&payloads[i]); err != nil {
			return respondError(c, "AddPerson", fmt.Sprintf("Invalid contact %d in request list", i+1), err)
		}
		person, err := payloads[i].ToPerson()
		if err != nil {
			return respondError(c, "AddPerson", fmt.Sprintf("Invalid contact %d in request list", i+1), err)
		}
		persons = append(persons, *person)
	}

	result, err := ph.uc.CreatePersons(c.Context(), persons)
	if err != nil {
		return respondError(c, "AddPerson", "Failed to add persons", err)
	}

	if len(result.Failures) > 0 {
		config.PrintLogInfo(fiber.StatusOK, "AddPerson")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Some persons could not be added",
			"data":    result,
		})
	}

	return respondData(c, "AddPerson", fiber.StatusCreated, "Persons added successfully", result)
}

// UpdatePerson replaces the person's scalar fields; phones and emails are
// managed through their own endpoints.
func (ph *personHandler) UpdatePerson(c *fiber.Ctx) error {
	var payload domain.PersonUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "UpdatePerson", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "UpdatePerson", "Invalid person data", err)
	}

	personID, err := strconv.Atoi(payload.PersonID)
	if err != nil {
		return respondError(c, "UpdatePerson", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	person, err := payload.ToPerson()
	if err != nil {
		return respondError(c, "UpdatePerson", "Invalid person data", err)
	}

	if err := ph.uc.UpdatePerson(c.Context(), personID, person); err != nil {
		return respondError(c, "UpdatePerson", "Failed to update person", err)
	}

	return respondData(c, "UpdatePerson", fiber.StatusOK, "Person updated successfully", nil)
}

// DeletePerson removes the person together with all of its phones and
// emails.
func (ph *personHandler) DeletePerson(c *fiber.Ctx) error {
	var payload domain.IDPayload
	if err := parseBody(c, &payload); err != nil {
		return respondError(c, "DeletePerson", "Invalid request body", err)
	}
	if err := validation.Struct(&payload); err != nil {
		return respondError(c, "DeletePerson", "Invalid person_id", err)
	}

	personID, err := payload.ID()
	if err != nil {
		return respondError(c, "DeletePerson", "Invalid person_id",
			&domain.ValidationError{Field: "person_id", Expect: "числовое значение", Received: payload.PersonID})
	}

	if err := ph.uc.DeletePerson(c.Context(), personID); err != nil {
		return respondError(c, "DeletePerson", "Failed to delete person", err)
	}

	return respondData(c, "DeletePerson", fiber.StatusOK, "Person and related contacts deleted successfully", nil)
}
