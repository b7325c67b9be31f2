package partner

import (
	"errors"
	"testing"

	"github.com/energyservice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() CustomerDetails {
	return CustomerDetails{
		Name:    "Mahi GmbH",
		VatID:   "DE123456789",
		City:    "Wemding",
		ZipCode: "86650",
		Address: "Musterstrasse 1",
		Email:   "info@mahi.de",
		Phone:   "+49 12 1234567",
	}
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer(validDetails())
	require.NoError(t, err)

	assert.True(t, c.IsActive())
	assert.True(t, c.IsNew())
	assert.Equal(t, "Mahi GmbH", c.Name)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewCustomer_Normalizes(t *testing.T) {
	d := validDetails()
	d.Name = "  Mahi GmbH "
	d.VatID = "de123456789"
	d.Email = "Info@Mahi.DE"

	c, err := NewCustomer(d)
	require.NoError(t, err)
	assert.Equal(t, "Mahi GmbH", c.Name)
	assert.Equal(t, "DE123456789", c.VatID)
	assert.Equal(t, "info@mahi.de", c.Email)
}

func TestNewCustomer_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CustomerDetails)
		code   string
	}{
		{"empty name", func(d *CustomerDetails) { d.Name = "" }, "INVALID_NAME"},
		{"bad vat", func(d *CustomerDetails) { d.VatID = "DE12345" }, "INVALID_VAT_ID"},
		{"foreign vat", func(d *CustomerDetails) { d.VatID = "AT123456789" }, "INVALID_VAT_ID"},
		{"empty city", func(d *CustomerDetails) { d.City = "" }, "INVALID_CITY"},
		{"short zip", func(d *CustomerDetails) { d.ZipCode = "8665" }, "INVALID_ZIP_CODE"},
		{"empty address", func(d *CustomerDetails) { d.Address = "" }, "INVALID_ADDRESS"},
		{"bad email", func(d *CustomerDetails) { d.Email = "not-an-email" }, "INVALID_EMAIL"},
		{"long phone", func(d *CustomerDetails) { d.Phone = "+49 1234567890 1234567890 1234567890" }, "INVALID_PHONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)

			c, err := NewCustomer(d)
			require.Error(t, err)
			assert.Nil(t, c)

			var de *shared.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, shared.KindInvalidInput, de.Kind)
		})
	}
}

func TestNewCustomer_OptionalFields(t *testing.T) {
	d := validDetails()
	d.VatID = ""
	d.Email = ""
	d.Phone = ""

	c, err := NewCustomer(d)
	require.NoError(t, err)
	assert.Empty(t, c.VatID)
	assert.Empty(t, c.Email)
}

func TestCustomer_UpdateKeepsActiveFlag(t *testing.T) {
	c, err := NewCustomer(validDetails())
	require.NoError(t, err)
	c.Deactivate()

	d := validDetails()
	d.City = "Nördlingen"
	require.NoError(t, c.Update(d))

	assert.Equal(t, "Nördlingen", c.City)
	assert.False(t, c.IsActive())
}
