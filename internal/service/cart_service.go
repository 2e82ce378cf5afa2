package service

import (
	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
	"go-salon-api/pkg/apierror"
)

type CartService struct {
	docs *store.DocumentStore
}

func NewCartService(docs *store.DocumentStore) *CartService {
	return &CartService{docs: docs}
}

func (s *CartService) Get() (model.Cart, error) {
	cart := model.Cart{Items: []model.CartItem{}}
	if err := s.docs.Read(cartDocument, &cart); err != nil {
		return model.Cart{}, err
	}

	return cart, nil
}

// Add merges the requested quantity into an existing line or appends a new
// one. The whole merge runs inside the cart document's critical section, so
// two near-simultaneous adds of the same product end up on one line with the
// summed quantity.
func (s *CartService) Add(req model.AddCartItemRequest) (model.Cart, error) {
	if req.ID == "" {
		return model.Cart{}, apierror.BadRequest("item id is required")
	}

	qty := req.Qty
	if qty <= 0 {
		qty = 1
	}

	var cart model.Cart
	err := s.docs.Update(cartDocument, &cart, func() error {
		for i := range cart.Items {
			if cart.Items[i].ID == req.ID {
				cart.Items[i].Qty += qty
				return nil
			}
		}
		cart.Items = append(cart.Items, model.CartItem{
			ID:    req.ID,
			Name:  req.Name,
			Price: req.Price,
			Qty:   qty,
			Img:   req.Img,
		})
		return nil
	})
	if err != nil {
		return model.Cart{}, err
	}

	return cart, nil
}

func (s *CartService) Remove(id string) (model.Cart, error) {
	var cart model.Cart
	err := s.docs.Update(cartDocument, &cart, func() error {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
		return nil
	})
	if err != nil {
		return model.Cart{}, err
	}

	return cart, nil
}

func (s *CartService) Clear() (model.Cart, error) {
	empty := model.Cart{Items: []model.CartItem{}}
	if err := s.docs.Write(cartDocument, empty); err != nil {
		return model.Cart{}, err
	}

	return empty, nil
}
