package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// SlotRepository слоты в памяти
type SlotRepository struct {
	store *Store
}

func (r *SlotRepository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	err := r.store.exec(ctx, func(d *data) error {
		return r.insert(d, slot)
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// CreateBatch вставляет все слоты или ни одного
func (r *SlotRepository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	return r.store.exec(ctx, func(d *data) error {
		seq := d.slotSeq
		inserted := make([]int64, 0, len(slots))
		for _, slot := range slots {
			if err := r.insert(d, slot); err != nil {
				for _, id := range inserted {
					delete(d.slots, id)
				}
				d.slotSeq = seq
				return err
			}
			inserted = append(inserted, slot.ID)
		}
		return nil
	})
}

// insert проверяет те же ограничения, что и схема PostgreSQL
func (r *SlotRepository) insert(d *data, slot *domain.Slot) error {
	if _, ok := d.studios[slot.StudioID]; !ok {
		return domain.ErrStudioNotFound
	}
	if !slot.EndTime.IsAfter(slot.StartTime) {
		return domain.ErrSlotUnavailable
	}

	date := domain.NormalizeDate(slot.Date)
	for _, existing := range d.slots {
		if existing.StudioID == slot.StudioID && existing.Date.Equal(date) && existing.StartTime.Equal(slot.StartTime) {
			return domain.ErrSlotUnavailable
		}
	}

	d.slotSeq++
	slot.ID = d.slotSeq
	slot.Date = date
	slot.CreatedAt = r.store.now()
	d.slots[slot.ID] = *slot
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	var result *domain.Slot
	err := r.store.exec(ctx, func(d *data) error {
		slot, ok := d.slots[id]
		if !ok {
			return domain.ErrSlotNotFound
		}
		result = &slot
		return nil
	})
	return result, err
}

// LockByID внутри транзакции эквивалентен GetByID: транзакции уже сериализованы
func (r *SlotRepository) LockByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.GetByID(ctx, id)
}

func (r *SlotRepository) ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error) {
	date = domain.NormalizeDate(date)
	result := make([]*domain.Slot, 0)
	err := r.store.exec(ctx, func(d *data) error {
		for _, slot := range d.slots {
			if slot.StudioID != studioID || !slot.Date.Equal(date) {
				continue
			}
			if held != nil && slot.Held != *held {
				continue
			}
			s := slot
			result = append(result, &s)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.IsBefore(result[j].StartTime) })
	return result, err
}

func (r *SlotRepository) CountByStudioAndDate(ctx context.Context, studioID int64, date time.Time) (int, error) {
	date = domain.NormalizeDate(date)
	count := 0
	err := r.store.exec(ctx, func(d *data) error {
		for _, slot := range d.slots {
			if slot.StudioID == studioID && slot.Date.Equal(date) {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *SlotRepository) SetHeld(ctx context.Context, id int64, held bool) error {
	return r.store.exec(ctx, func(d *data) error {
		slot, ok := d.slots[id]
		if !ok {
			return domain.ErrSlotNotFound
		}
		slot.Held = held
		d.slots[id] = slot
		return nil
	})
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	return r.store.exec(ctx, func(d *data) error {
		if _, ok := d.slots[id]; !ok {
			return domain.ErrSlotNotFound
		}
		for _, booking := range d.bookings {
			if booking.SlotID == id {
				return domain.ErrInUse
			}
		}
		delete(d.slots, id)
		return nil
	})
}
