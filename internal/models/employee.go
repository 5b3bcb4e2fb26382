package models

import "time"

// Employee represents one row of the Northwind employees table.
// Every column except the primary key is nullable; absent values are kept
// as nil pointers so that NULL survives a write/read round-trip untouched.
type Employee struct {
	ID              int        `json:"id"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	Title           *string    `json:"title"`
	TitleOfCourtesy *string    `json:"titleOfCourtesy"`
	BirthDate       *time.Time `json:"birthDate"`
	HireDate        *time.Time `json:"hireDate"`
	Address         *string    `json:"address"`
	City            *string    `json:"city"`
	Region          *string    `json:"region"`
	PostalCode      *string    `json:"postalCode"`
	Country         *string    `json:"country"`
	HomePhone       *string    `json:"homePhone"`
	Extension       *string    `json:"extension"`
	Notes           *string    `json:"notes"`
	ReportsTo       *int       `json:"reportsTo"` // weak reference to another employee's ID
	PhotoPath       *string    `json:"photoPath"`
}
