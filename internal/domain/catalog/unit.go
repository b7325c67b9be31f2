package catalog

// Unit is the measurement unit a tariff is priced in (kWh, m³).
// Units are reference data and carry no active flag.
type Unit struct {
	ID   int64
	Name string
}

// Usable reports whether the unit can label an invoice line
func (u *Unit) Usable() bool {
	return u != nil && u.ID != 0 && u.Name != ""
}
