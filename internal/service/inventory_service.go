package service

import (
	"github.com/google/uuid"

	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
)

type InventoryService struct {
	docs *store.DocumentStore
}

func NewInventoryService(docs *store.DocumentStore) *InventoryService {
	return &InventoryService{docs: docs}
}

func (s *InventoryService) List() ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	if err := s.docs.Read(inventoryDocument, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// Create prepends a new item so the newest product shows first.
func (s *InventoryService) Create(req model.CreateInventoryRequest) (model.InventoryItem, error) {
	item := model.InventoryItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Img:         req.Img,
	}
	if item.Name == "" {
		item.Name = "Nieuwe product"
	}
	if item.Category == "" {
		item.Category = "Algemeen"
	}
	if item.Price == "" {
		item.Price = "0.00"
	}
	if item.Img == "" && req.ImgFilename != "" {
		item.Img = "/uploads/" + req.ImgFilename
	}

	var items []model.InventoryItem
	err := s.docs.Update(inventoryDocument, &items, func() error {
		items = append([]model.InventoryItem{item}, items...)
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}

	return item, nil
}

// Delete removes the item with the given id and reports how many entries
// went away (zero when the id was unknown).
func (s *InventoryService) Delete(id string) (int, error) {
	deleted := 0

	var items []model.InventoryItem
	err := s.docs.Update(inventoryDocument, &items, func() error {
		kept := items[:0]
		for _, item := range items {
			if item.ID == id {
				deleted++
				continue
			}
			kept = append(kept, item)
		}
		items = kept
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
