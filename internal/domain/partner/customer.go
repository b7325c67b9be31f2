package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/energyservice/backend/internal/domain/shared"
)

var (
	vatIDPattern   = regexp.MustCompile(`^DE[0-9]{9}$`)
	zipCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var _ shared.SoftDeletable = (*Customer)(nil)

// Customer is a billable company. Customers are never deleted, only deactivated.
type Customer struct {
	shared.BaseEntity
	Name        string
	VatID       string // Umsatzsteuer-Identifikationsnummer, optional
	City        string
	ZipCode     string
	Address     string
	Email       string
	Phone       string
	Description string
	Active      bool
}

// CustomerDetails carries the mutable customer attributes
type CustomerDetails struct {
	Name        string
	VatID       string
	City        string
	ZipCode     string
	Address     string
	Email       string
	Phone       string
	Description string
}

// NewCustomer creates a new active customer after validating details
func NewCustomer(details CustomerDetails) (*Customer, error) {
	c := &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Active:     true,
	}
	if err := c.Update(details); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the customer's attributes. The active flag is untouched.
func (c *Customer) Update(details CustomerDetails) error {
	details = details.normalized()
	if err := details.Validate(); err != nil {
		return err
	}
	c.Name = details.Name
	c.VatID = details.VatID
	c.City = details.City
	c.ZipCode = details.ZipCode
	c.Address = details.Address
	c.Email = details.Email
	c.Phone = details.Phone
	c.Description = details.Description
	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Active
}

// Deactivate marks the customer inactive
func (c *Customer) Deactivate() {
	c.Active = false
}

// Created returns when the customer was created
func (c *Customer) Created() time.Time {
	return c.CreatedAt
}

func (d CustomerDetails) normalized() CustomerDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.VatID = strings.ToUpper(strings.TrimSpace(d.VatID))
	d.City = strings.TrimSpace(d.City)
	d.ZipCode = strings.TrimSpace(d.ZipCode)
	d.Address = strings.TrimSpace(d.Address)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Description = strings.TrimSpace(d.Description)
	return d
}

// Validate checks the customer attributes against the persisted column rules
func (d CustomerDetails) Validate() error {
	if err := validateRequired("name", d.Name, 200); err != nil {
		return err
	}
	if d.VatID != "" && !vatIDPattern.MatchString(d.VatID) {
		return shared.NewInvalidInputError("INVALID_VAT_ID", "Invalid German VAT ID format").
			WithData(map[string]any{"field": "vat_id"})
	}
	if err := validateRequired("city", d.City, 200); err != nil {
		return err
	}
	if !zipCodePattern.MatchString(d.ZipCode) {
		return shared.NewInvalidInputError("INVALID_ZIP_CODE", "Zip code must be 5 digits").
			WithData(map[string]any{"field": "zip_code"})
	}
	if err := validateRequired("address", d.Address, 400); err != nil {
		return err
	}
	if d.Email != "" {
		if len(d.Email) > 320 {
			return invalidField("email", "Email cannot exceed 320 characters")
		}
		if !emailPattern.MatchString(d.Email) {
			return invalidField("email", "Invalid email address")
		}
	}
	if len(d.Phone) > 32 {
		return invalidField("phone", "Phone cannot exceed 32 characters")
	}
	if len(d.Description) > 500 {
		return invalidField("description", "Description cannot exceed 500 characters")
	}
	return nil
}

func validateRequired(field, value string, max int) error {
	if value == "" {
		return invalidField(field, "Customer "+field+" cannot be empty")
	}
	if len(value) > max {
		return invalidField(field, "Customer "+field+" is too long")
	}
	return nil
}

func invalidField(field, message string) error {
	return shared.NewInvalidInputError("INVALID_"+strings.ToUpper(field), message).
		WithData(map[string]any{"field": field})
}
