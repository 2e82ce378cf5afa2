package service

import (
	"github.com/google/uuid"

	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
)

const appointmentStatusPlanned = "gepland"

type AppointmentService struct {
	docs *store.DocumentStore
}

func NewAppointmentService(docs *store.DocumentStore) *AppointmentService {
	return &AppointmentService{docs: docs}
}

// ListFor returns all appointments for staff; clients only see their own.
func (s *AppointmentService) ListFor(user model.User) ([]model.Appointment, error) {
	appointments := []model.Appointment{}
	if err := s.docs.Read(appointmentsDocument, &appointments); err != nil {
		return nil, err
	}

	if user.Role != model.RoleClient {
		return appointments, nil
	}

	own := []model.Appointment{}
	for _, appointment := range appointments {
		if appointment.UserID == user.ID {
			own = append(own, appointment)
		}
	}

	return own, nil
}

func (s *AppointmentService) Create(user model.User, req model.AppointmentRequest) (model.Appointment, error) {
	appointment := model.Appointment{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Datetime: req.Datetime,
		Notes:    req.Notes,
		Status:   req.Status,
	}
	if appointment.Status == "" {
		appointment.Status = appointmentStatusPlanned
	}

	var appointments []model.Appointment
	err := s.docs.Update(appointmentsDocument, &appointments, func() error {
		appointments = append([]model.Appointment{appointment}, appointments...)
		return nil
	})
	if err != nil {
		return model.Appointment{}, err
	}

	return appointment, nil
}

// Update applies the non-empty fields of req. Clients may only touch their
// own appointments; workers and admins may touch any.
func (s *AppointmentService) Update(user model.User, id string, req model.AppointmentRequest) (model.Appointment, error) {
	var updated model.Appointment

	var appointments []model.Appointment
	err := s.docs.Update(appointmentsDocument, &appointments, func() error {
		for i := range appointments {
			if appointments[i].ID != id {
				continue
			}
			if user.Role == model.RoleClient && appointments[i].UserID != user.ID {
				return model.ErrForbidden
			}
			if req.Datetime != "" {
				appointments[i].Datetime = req.Datetime
			}
			if req.Notes != "" {
				appointments[i].Notes = req.Notes
			}
			if req.Status != "" {
				appointments[i].Status = req.Status
			}
			updated = appointments[i]
			return nil
		}
		return model.ErrAppointmentNotFound
	})
	if err != nil {
		return model.Appointment{}, err
	}

	return updated, nil
}

func (s *AppointmentService) Delete(user model.User, id string) error {
	var appointments []model.Appointment
	return s.docs.Update(appointmentsDocument, &appointments, func() error {
		for i := range appointments {
			if appointments[i].ID != id {
				continue
			}
			if user.Role == model.RoleClient && appointments[i].UserID != user.ID {
				return model.ErrForbidden
			}
			appointments = append(appointments[:i], appointments[i+1:]...)
			return nil
		}
		return model.ErrAppointmentNotFound
	})
}
