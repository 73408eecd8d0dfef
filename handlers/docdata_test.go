package handlers

import (
	"strings"
	"testing"

	"roofcrm/services"
	"roofcrm/testhelpers"
)

func TestBuildDocumentData_CustomerAddressLines(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Address Customer")
	customer.Set("city", "Portland")
	customer.Set("state", "OR")
	customer.Set("zip", "97201")
	if err := app.Save(customer); err != nil {
		t.Fatalf("failed to update customer: %v", err)
	}
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Address Estimate")

	data, err := buildDocumentData(app, estimate, services.CompanyInfo{}, "customer")
	if err != nil {
		t.Fatalf("buildDocumentData() error = %v", err)
	}

	found := false
	for _, line := range data.CustomerLines {
		if line == "Portland, OR 97201" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected city line %q in %v", "Portland, OR 97201", data.CustomerLines)
	}
}

func TestBuildDocumentData_EmptyCityOmitsLeadingComma(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Stateline Customer")
	customer.Set("city", "")
	customer.Set("state", "OR")
	customer.Set("zip", "97201")
	if err := app.Save(customer); err != nil {
		t.Fatalf("failed to update customer: %v", err)
	}
	estimate := testhelpers.CreateTestEstimate(t, app, customer.Id, "Stateline Estimate")

	data, err := buildDocumentData(app, estimate, services.CompanyInfo{}, "customer")
	if err != nil {
		t.Fatalf("buildDocumentData() error = %v", err)
	}

	for _, line := range data.CustomerLines {
		if strings.HasPrefix(line, ",") || strings.HasPrefix(line, " ") {
			t.Errorf("address line %q has a dangling separator", line)
		}
	}
	found := false
	for _, line := range data.CustomerLines {
		if line == "OR 97201" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected city line %q in %v", "OR 97201", data.CustomerLines)
	}
}
