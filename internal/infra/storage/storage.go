package storage

import (
	"context"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	bookingRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/booking"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/memstore"
	packageRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/packages"
	slotRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/slot"
	studioRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/StudioBookingService/pkg/txmanager"
)

type StudioRepository interface {
	Create(ctx context.Context, studio *domain.Studio) (*domain.Studio, error)
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	LockByID(ctx context.Context, id int64) (*domain.Studio, error)
	GetByName(ctx context.Context, name string) (*domain.Studio, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error)
	Delete(ctx context.Context, id int64) error
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	ListByStudio(ctx context.Context, studioID int64) ([]*domain.Package, error)
	Delete(ctx context.Context, id int64) error
}

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	LockByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error)
	CountByStudioAndDate(ctx context.Context, studioID int64, date time.Time) (int, error)
	SetHeld(ctx context.Context, id int64, held bool) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	LockByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage набор репозиториев поверх одного хранилища
type Storage struct {
	Studios   StudioRepository
	Packages  PackageRepository
	Slots     SlotRepository
	Bookings  BookingRepository
	TxManager TransactionManager
}

// NewPostgres репозитории поверх PostgreSQL
// Транзакция из контекста подхватывается всеми репозиториями
func NewPostgres(db *dbmetrics.DB) *Storage {
	return &Storage{
		Studios:   studioRepo.NewRepository(db),
		Packages:  packageRepo.NewRepository(db),
		Slots:     slotRepo.NewRepository(db),
		Bookings:  bookingRepo.NewRepository(db),
		TxManager: txmanager.NewTransactionManager(db),
	}
}

// NewMemory хранилище в памяти процесса, данные теряются при перезапуске
func NewMemory() *Storage {
	store := memstore.New()
	return &Storage{
		Studios:   store.Studios(),
		Packages:  store.Packages(),
		Slots:     store.Slots(),
		Bookings:  store.Bookings(),
		TxManager: store.TxManager(),
	}
}
