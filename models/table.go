package models

import "time"

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"
	TableStatusCleaning  = "cleaning"
)

const (
	TableShapeRound     = "round"
	TableShapeSquare    = "square"
	TableShapeRectangle = "rectangle"
)

func IsTableStatus(s string) bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusCleaning:
		return true
	}
	return false
}

func IsTableShape(s string) bool {
	switch s {
	case TableShapeRound, TableShapeSquare, TableShapeRectangle:
		return true
	}
	return false
}

type Table struct {
	ID        int       `json:"id"`
	Number    int       `json:"number"`
	Seats     int       `json:"seats"`
	Shape     string    `json:"shape"`
	Status    string    `json:"status"`
	Server    *string   `json:"server"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
