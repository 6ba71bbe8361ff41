package model

import "time"

// Raw material shipment statuses. The set is open; these are the known values.
const (
	RawMaterialStatusSent         = "Sent"
	RawMaterialStatusInProduction = "In Production"
	RawMaterialStatusCompleted    = "Completed"
)

// Mill is an external weaving mill that turns raw material into fabric
type Mill struct {
	Base
	MillName      string `json:"mill_name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

// RawMaterial is a shipment of raw material sent to a mill.
// FabricReceivedMeters and ReceivedDate stay nil until fabric comes back.
type RawMaterial struct {
	Base
	MillID               string     `json:"mill_id"`
	MaterialType         string     `json:"material_type"`
	QuantityKg           float64    `json:"quantity_kg"`
	SentDate             time.Time  `json:"sent_date"`
	Status               string     `json:"status"`
	FabricReceivedMeters *float64   `json:"fabric_received_meters"`
	ReceivedDate         *time.Time `json:"received_date"`
}

// MillRef is the short projection attached to raw material shipments
type MillRef struct {
	MillName string `json:"mill_name"`
}
