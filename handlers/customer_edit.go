package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"roofcrm/templates"
)

func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		data := templates.CustomerFormData{
			ID:     record.Id,
			Name:   record.GetString("name"),
			Phone:  record.GetString("phone"),
			Email:  record.GetString("email"),
			Street: record.GetString("street"),
			City:   record.GetString("city"),
			State:  record.GetString("state"),
			Zip:    record.GetString("zip"),
			Errors: make(map[string]string),
		}
		headerData := GetHeaderData(e.Request)
		component := templates.CustomerEditPage(data, headerData)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_update: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := customerFormData(e.Request)
		data.ID = record.Id
		errors := validateCustomerForm(data)

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data.Errors = errors
			headerData := GetHeaderData(e.Request)
			component := templates.CustomerEditPage(data, headerData)
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("name", data.Name)
		record.Set("phone", data.Phone)
		record.Set("email", data.Email)
		record.Set("street", data.Street)
		record.Set("city", data.City)
		record.Set("state", data.State)
		record.Set("zip", data.Zip)

		if err := app.Save(record); err != nil {
			log.Printf("customer_update: could not save customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer updated")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers/"+record.Id)
	}
}
