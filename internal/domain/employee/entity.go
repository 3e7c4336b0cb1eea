package employee

import "time"

// Employee is a registered member of the tip-share pool. The directory is
// display/registration data only; statistics group work records by their
// own name string, not by this table.
type Employee struct {
	ID        string
	Name      string
	PixKey    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
