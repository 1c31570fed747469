package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// PackageRepository пакеты в памяти
type PackageRepository struct {
	store *Store
}

func (r *PackageRepository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	err := r.store.exec(ctx, func(d *data) error {
		if _, ok := d.studios[pkg.StudioID]; !ok {
			return domain.ErrStudioNotFound
		}
		d.packageSeq++
		now := r.store.now()
		pkg.ID = d.packageSeq
		pkg.CreatedAt = now
		pkg.UpdatedAt = now
		d.packages[pkg.ID] = *pkg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var result *domain.Package
	err := r.store.exec(ctx, func(d *data) error {
		pkg, ok := d.packages[id]
		if !ok {
			return domain.ErrPackageNotFound
		}
		result = &pkg
		return nil
	})
	return result, err
}

func (r *PackageRepository) ListByStudio(ctx context.Context, studioID int64) ([]*domain.Package, error) {
	result := make([]*domain.Package, 0)
	err := r.store.exec(ctx, func(d *data) error {
		for _, pkg := range d.packages {
			if pkg.StudioID == studioID {
				p := pkg
				result = append(result, &p)
			}
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Price != result[j].Price {
			return result[i].Price < result[j].Price
		}
		return result[i].ID < result[j].ID
	})
	return result, err
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.store.exec(ctx, func(d *data) error {
		if _, ok := d.packages[id]; !ok {
			return domain.ErrPackageNotFound
		}
		for _, booking := range d.bookings {
			if booking.PackageID == id {
				return domain.ErrInUse
			}
		}
		delete(d.packages, id)
		return nil
	})
}
