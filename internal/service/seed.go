package service

import (
	"log/slog"

	"github.com/google/uuid"

	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
)

// SeedDocuments makes sure every document the API depends on exists, mirroring
// a first-run installation: a default administrator, a starter inventory, an
// empty cart, and empty session/appointment documents. Existing documents are
// left alone.
func SeedDocuments(docs *store.DocumentStore) error {
	adminHash, err := HashPassword("admin123")
	if err != nil {
		return err
	}

	defaultUsers := []model.User{{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		Role:         model.RoleAdmin,
	}}

	defaultInventory := []model.InventoryItem{
		{ID: uuid.NewString(), Name: "Warme Deken", Price: "29.99", Img: "/images/warme-deken.svg"},
		{ID: uuid.NewString(), Name: "Relaxatiekaars", Price: "14.99", Img: "/images/relaxatiekaars.svg"},
		{ID: uuid.NewString(), Name: "Comfortkussen", Price: "39.99", Img: "/images/comfortkussen.svg"},
		{ID: uuid.NewString(), Name: "Vochtige Doekjes", Price: "6.99", Img: "/images/vochtige-doekjes.svg"},
		{ID: uuid.NewString(), Name: "Soepele Sokken", Price: "9.99", Img: "/images/soepele-sokken.svg"},
		{ID: uuid.NewString(), Name: "Massageolie", Price: "19.99", Img: "/images/massageolie.svg"},
	}

	if err := docs.Ensure(usersDocument, defaultUsers); err != nil {
		return err
	}
	if err := docs.Ensure(sessionsDocument, map[string]model.Session{}); err != nil {
		return err
	}
	if err := docs.Ensure(inventoryDocument, defaultInventory); err != nil {
		return err
	}
	if err := docs.Ensure(cartDocument, model.Cart{Items: []model.CartItem{}}); err != nil {
		return err
	}
	if err := docs.Ensure(appointmentsDocument, []model.Appointment{}); err != nil {
		return err
	}

	slog.Info("documents ready")
	return nil
}
