package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// Store хранилище в памяти с транзакционной семантикой
//
// Транзакция держит mu до commit/rollback, поэтому транзакции выполняются
// строго последовательно. Запрос вне транзакции берет mu на время одной операции.
// Откат восстанавливает снимок данных, сделанный при начале транзакции.
type Store struct {
	mu sync.Mutex

	data data
	now  func() time.Time
}

type data struct {
	studios  map[int64]domain.Studio
	packages map[int64]domain.Package
	slots    map[int64]domain.Slot
	bookings map[int64]domain.Booking

	studioSeq  int64
	packageSeq int64
	slotSeq    int64
	bookingSeq int64
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		data: data{
			studios:  make(map[int64]domain.Studio),
			packages: make(map[int64]domain.Package),
			slots:    make(map[int64]domain.Slot),
			bookings: make(map[int64]domain.Booking),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Studios репозиторий студий
func (s *Store) Studios() *StudioRepository {
	return &StudioRepository{store: s}
}

// Packages репозиторий пакетов
func (s *Store) Packages() *PackageRepository {
	return &PackageRepository{store: s}
}

// Slots репозиторий слотов
func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}

// Bookings репозиторий бронирований
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// TxManager менеджер транзакций хранилища
func (s *Store) TxManager() *TransactionManager {
	return &TransactionManager{store: s}
}

func (d *data) clone() data {
	c := data{
		studios:    make(map[int64]domain.Studio, len(d.studios)),
		packages:   make(map[int64]domain.Package, len(d.packages)),
		slots:      make(map[int64]domain.Slot, len(d.slots)),
		bookings:   make(map[int64]domain.Booking, len(d.bookings)),
		studioSeq:  d.studioSeq,
		packageSeq: d.packageSeq,
		slotSeq:    d.slotSeq,
		bookingSeq: d.bookingSeq,
	}
	for k, v := range d.studios {
		c.studios[k] = v
	}
	for k, v := range d.packages {
		c.packages[k] = v
	}
	for k, v := range d.slots {
		c.slots[k] = v
	}
	for k, v := range d.bookings {
		c.bookings[k] = v
	}
	return c
}

type txKey struct{}

// inTx проверяет, что контекст принадлежит транзакции именно этого хранилища
func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// exec выполняет fn под блокировкой, если вызов сделан вне транзакции
func (s *Store) exec(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx(ctx) {
		return fn(&s.data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// TransactionManager реализует Do/DoSerializable/DoReadOnly для Store
type TransactionManager struct {
	store *Store
}

func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TransactionManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := m.store
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}
