package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// StudioRepository студии в памяти
type StudioRepository struct {
	store *Store
}

func (r *StudioRepository) Create(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	err := r.store.exec(ctx, func(d *data) error {
		for _, existing := range d.studios {
			if existing.Name == studio.Name {
				return domain.ErrStudioNameTaken
			}
		}
		d.studioSeq++
		now := r.store.now()
		studio.ID = d.studioSeq
		studio.CreatedAt = now
		studio.UpdatedAt = now
		d.studios[studio.ID] = *studio
		return nil
	})
	if err != nil {
		return nil, err
	}
	return studio, nil
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var result *domain.Studio
	err := r.store.exec(ctx, func(d *data) error {
		studio, ok := d.studios[id]
		if !ok {
			return domain.ErrStudioNotFound
		}
		result = &studio
		return nil
	})
	return result, err
}

// LockByID внутри транзакции эквивалентен GetByID: транзакции уже сериализованы
func (r *StudioRepository) LockByID(ctx context.Context, id int64) (*domain.Studio, error) {
	return r.GetByID(ctx, id)
}

func (r *StudioRepository) GetByName(ctx context.Context, name string) (*domain.Studio, error) {
	var result *domain.Studio
	err := r.store.exec(ctx, func(d *data) error {
		for _, studio := range d.studios {
			if studio.Name == name {
				s := studio
				result = &s
				return nil
			}
		}
		return domain.ErrStudioNotFound
	})
	return result, err
}

func (r *StudioRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error) {
	result := make([]*domain.Studio, 0)
	err := r.store.exec(ctx, func(d *data) error {
		for _, studio := range d.studios {
			if activeOnly && !studio.Active {
				continue
			}
			s := studio
			result = append(result, &s)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, err
}

func (r *StudioRepository) Delete(ctx context.Context, id int64) error {
	return r.store.exec(ctx, func(d *data) error {
		if _, ok := d.studios[id]; !ok {
			return domain.ErrStudioNotFound
		}
		for _, pkg := range d.packages {
			if pkg.StudioID == id {
				return domain.ErrInUse
			}
		}
		for _, slot := range d.slots {
			if slot.StudioID == id {
				return domain.ErrInUse
			}
		}
		for _, booking := range d.bookings {
			if booking.StudioID == id {
				return domain.ErrInUse
			}
		}
		delete(d.studios, id)
		return nil
	})
}
