package entity

import "time"

// Customer representa un cliente asignado a exactamente un vendedor (SellerID).
// Solo ese vendedor puede leerlo o modificarlo.
type Customer struct {
	ID        string
	Name      string
	Surname   string
	Company   string
	Email     string
	Phone     string
	SellerID  string
	CreatedAt time.Time
}

// OwnerID implementa domain.Owned.
func (c *Customer) OwnerID() string { return c.SellerID }
