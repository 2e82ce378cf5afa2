package service

// Names of the persisted JSON documents. All mutable state shares the
// DocumentStore, one document per concern.
const (
	usersDocument        = "users"
	sessionsDocument     = "sessions"
	inventoryDocument    = "inventory"
	cartDocument         = "cart"
	appointmentsDocument = "appointments"
)
