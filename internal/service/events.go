package service

// Event names published to live dashboard clients
const (
	EventOrderCreated     = "order.created"
	EventOrderUpdated     = "order.updated"
	EventOrderCancelled   = "order.cancelled"
	EventBillCreated      = "bill.created"
	EventBillPaymentSet   = "bill.payment_updated"
	EventInventoryChanged = "inventory.changed"
	EventLowStock         = "inventory.low_stock"
	EventShipmentUpdated  = "raw_material.updated"
)

// EventPublisher receives domain events after a write has been committed.
type EventPublisher interface {
	Publish(event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
