package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// BookingRepository бронирования в памяти
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	err := r.store.exec(ctx, func(d *data) error {
		if _, ok := d.packages[booking.PackageID]; !ok {
			return domain.ErrPackageNotFound
		}
		if _, ok := d.slots[booking.SlotID]; !ok {
			return domain.ErrSlotNotFound
		}
		// Аналог частичного уникального индекса bookings_active_slot_idx
		if booking.Status.IsActive() {
			for _, existing := range d.bookings {
				if existing.SlotID == booking.SlotID && existing.Status.IsActive() {
					return domain.ErrSlotUnavailable
				}
			}
		}

		d.bookingSeq++
		now := r.store.now()
		booking.ID = d.bookingSeq
		booking.CreatedAt = now
		booking.UpdatedAt = now
		d.bookings[booking.ID] = *booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var result *domain.Booking
	err := r.store.exec(ctx, func(d *data) error {
		booking, ok := d.bookings[id]
		if !ok {
			return domain.ErrBookingNotFound
		}
		result = &booking
		return nil
	})
	return result, err
}

// LockByID внутри транзакции эквивалентен GetByID: транзакции уже сериализованы
func (r *BookingRepository) LockByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	err := r.store.exec(ctx, func(d *data) error {
		for _, booking := range d.bookings {
			if booking.UserID != userID {
				continue
			}
			if status != nil && booking.Status != *status {
				continue
			}
			b := booking
			result = append(result, &b)
		}
		return nil
	})
	sortNewestFirst(result)
	return result, err
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	err := r.store.exec(ctx, func(d *data) error {
		for _, booking := range d.bookings {
			if filter.StudioID != nil && booking.StudioID != *filter.StudioID {
				continue
			}
			if filter.Status != nil && booking.Status != *filter.Status {
				continue
			}
			if filter.Date != nil {
				slot, ok := d.slots[booking.SlotID]
				if !ok || !slot.Date.Equal(domain.NormalizeDate(*filter.Date)) {
					continue
				}
			}
			b := booking
			result = append(result, &b)
		}
		return nil
	})
	sortNewestFirst(result)
	return result, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.store.exec(ctx, func(d *data) error {
		booking, ok := d.bookings[id]
		if !ok {
			return domain.ErrBookingNotFound
		}
		if status.IsActive() && !booking.Status.IsActive() {
			for otherID, other := range d.bookings {
				if otherID != id && other.SlotID == booking.SlotID && other.Status.IsActive() {
					return domain.ErrSlotUnavailable
				}
			}
		}

		now := r.store.now()
		booking.Status = status
		booking.UpdatedAt = now
		if status == domain.StatusCancelled {
			booking.CancelledAt = &now
		}
		d.bookings[id] = booking
		return nil
	})
}

func sortNewestFirst(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ID > bookings[j].ID
	})
}
