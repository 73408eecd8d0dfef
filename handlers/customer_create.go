package handlers

import (
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerFormData{
			Errors: make(map[string]string),
		}
		headerData := GetHeaderData(e.Request)
		component := templates.CustomerCreatePage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func customerFormData(r *http.Request) templates.CustomerFormData {
	return templates.CustomerFormData{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Phone:  strings.TrimSpace(r.FormValue("phone")),
		Email:  strings.TrimSpace(r.FormValue("email")),
		Street: strings.TrimSpace(r.FormValue("street")),
		City:   strings.TrimSpace(r.FormValue("city")),
		State:  strings.TrimSpace(r.FormValue("state")),
		Zip:    strings.TrimSpace(r.FormValue("zip")),
	}
}

func validateCustomerForm(data templates.CustomerFormData) map[string]string {
	errors := make(map[string]string)
	if data.Name == "" {
		errors["name"] = "Customer name is required"
	}
	if data.Email != "" {
		if _, err := mail.ParseAddress(data.Email); err != nil {
			errors["email"] = "Invalid email address"
		}
	}
	return errors
}

func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := customerFormData(e.Request)
		errors := validateCustomerForm(data)

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Errors = errors
			headerData := GetHeaderData(e.Request)
			component := templates.CustomerCreatePage(data, headerData)
			return component.Render(e.Request.Context(), e.Response)
		}

		customersCol, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(customersCol)
		record.Set("name", data.Name)
		record.Set("phone", data.Phone)
		record.Set("email", data.Email)
		record.Set("street", data.Street)
		record.Set("city", data.City)
		record.Set("state", data.State)
		record.Set("zip", data.Zip)
		record.Set("portal_token", uuid.NewString())

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers/"+record.Id)
	}
}
