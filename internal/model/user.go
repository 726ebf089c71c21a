package model

import "time"

// Customer is a consumer shopper account.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	ZipCode      string    `json:"zipCode,omitempty"`
	Latitude     string    `json:"latitude,omitempty"`
	Longitude    string    `json:"longitude,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// IndustryUser is an industrial account that submits waste pickup
// requests. WasteTypes is the set of waste types the industry
// declared at registration; pickup requests must use one of them.
type IndustryUser struct {
	ID           string    `json:"id"`
	IndustryName string    `json:"industryName"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Latitude     string    `json:"latitude,omitempty"`
	Longitude    string    `json:"longitude,omitempty"`
	WasteTypes   []string  `json:"wasteTypes"`
	Description  string    `json:"description,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// GeneratesWaste reports whether the industry declared the given waste type.
func (u *IndustryUser) GeneratesWaste(wasteType string) bool {
	for _, t := range u.WasteTypes {
		if t == wasteType {
			return true
		}
	}
	return false
}
