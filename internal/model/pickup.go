package model

import (
	"fmt"
	"time"
)

// Pickup request statuses. "Picked Up" matches the wire format used
// by existing clients.
const (
	PickupStatusPending  = "Pending"
	PickupStatusAssigned = "Assigned"
	PickupStatusPickedUp = "Picked Up"
)

// WasteTypes lists every waste type an industry may declare.
var WasteTypes = []string{
	"Plastic",
	"Organic",
	"Metal",
	"Paper",
	"Glass",
	"Electronic",
	"Textile",
	"Chemical",
}

// PickupRequest is an industry user's submission asking for waste
// collection of a given type and amount (kg). Requests are
// cancellable while Pending or Assigned.
type PickupRequest struct {
	ID          string `json:"id"`
	IndustryID  string `json:"industryId"`
	WasteType   string `json:"wasteType"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`
	RequestDate string `json:"requestDate"`
	Notes       string `json:"notes,omitempty"`
}

// Cancellable reports whether the request may still be cancelled.
func (r *PickupRequest) Cancellable() bool {
	return r.Status == PickupStatusPending || r.Status == PickupStatusAssigned
}

// NewPickupRequestID returns a time-derived request identifier.
func NewPickupRequestID(now time.Time) string {
	return fmt.Sprintf("%d", now.UnixMilli())
}

// KnownWasteType reports whether t is one of the recognised waste types.
func KnownWasteType(t string) bool {
	for _, wt := range WasteTypes {
		if wt == t {
			return true
		}
	}
	return false
}
