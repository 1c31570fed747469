package studios

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	packageRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/packages"
	studioRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
)

// Service каталог студий и пакетов
type Service struct {
	studioRepo    StudioRepository
	packageRepo   PackageRepository
	slotGenerator SlotGenerator
	horizonDays   int
	logger        Logger

	now func() time.Time
}

// NewService создает новый экземпляр сервиса студий
// horizonDays - на сколько дней вперед генерируются слоты при создании студии
func NewService(
	studioRepo StudioRepository,
	packageRepo PackageRepository,
	slotGenerator SlotGenerator,
	horizonDays int,
	logger Logger,
) *Service {
	return &Service{
		studioRepo:    studioRepo,
		packageRepo:   packageRepo,
		slotGenerator: slotGenerator,
		horizonDays:   horizonDays,
		logger:        logger,
		now:           time.Now,
	}
}

// ListStudios возвращает студии, отсортированные по названию
func (s *Service) ListStudios(ctx context.Context, activeOnly bool) (*models.StudioListResponse, error) {
	studios, err := s.studioRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListStudios: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStudios - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStudioList(studios), nil
}

// GetStudio получает студию по ID
func (s *Service) GetStudio(ctx context.Context, id int64) (*models.StudioResponse, error) {
	studio, err := s.getStudio(ctx, "GetStudio", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainStudio(studio), nil
}

// CreateStudio создает студию и сразу заполняет слотами горизонт бронирования
// Ошибка генерации слотов только логируется: студия уже создана, горизонт дозаполнит планировщик
func (s *Service) CreateStudio(ctx context.Context, req *models.CreateStudioRequest) (*models.StudioResponse, error) {
	s.logger.Info("CreateStudio: creating studio name=%q", req.Name)

	if err := validateCreateStudio(req); err != nil {
		s.logger.Warn("CreateStudio: validation failed: %v", err)
		return nil, err
	}

	studio, err := s.studioRepo.Create(ctx, &domain.Studio{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OpeningHour: req.OpeningHour,
		ClosingHour: req.ClosingHour,
		Active:      true,
	})
	if err != nil {
		if errors.Is(err, studioRepo.ErrNameTaken) {
			s.logger.Warn("CreateStudio: name %q already taken", req.Name)
			return nil, ErrStudioNameTaken
		}
		s.logger.Error("CreateStudio: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStudio - repository error: %v", ErrInternal, err)
	}

	if s.slotGenerator != nil && s.horizonDays > 0 {
		resp, err := s.slotGenerator.ExecuteForDays(ctx, &ensure_slots.DaysRequest{
			StudioID:  studio.ID,
			StartDate: domain.NormalizeDate(s.now()),
			NumDays:   s.horizonDays,
		})
		if err != nil {
			s.logger.Error("CreateStudio: failed to generate slots for studio id=%d: %v", studio.ID, err)
		} else {
			s.logger.Info("CreateStudio: generated %d slots for studio id=%d", resp.Created, studio.ID)
		}
	}

	s.logger.Info("CreateStudio: successfully created studio id=%d", studio.ID)
	return models.FromDomainStudio(studio), nil
}

// DeleteStudio удаляет студию без пакетов и слотов
func (s *Service) DeleteStudio(ctx context.Context, id int64) error {
	s.logger.Info("DeleteStudio: deleting studio id=%d", id)

	if err := s.studioRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, studioRepo.ErrStudioNotFound):
			return ErrStudioNotFound
		case errors.Is(err, studioRepo.ErrInUse):
			s.logger.Warn("DeleteStudio: studio id=%d is referenced by packages or slots", id)
			return ErrInUse
		default:
			s.logger.Error("DeleteStudio: repository error for studio id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteStudio - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteStudio: successfully deleted studio id=%d", id)
	return nil
}

// ListPackages возвращает пакеты студии по возрастанию цены
func (s *Service) ListPackages(ctx context.Context, studioID int64) (*models.PackageListResponse, error) {
	if _, err := s.getStudio(ctx, "ListPackages", studioID); err != nil {
		return nil, err
	}

	packages, err := s.packageRepo.ListByStudio(ctx, studioID)
	if err != nil {
		s.logger.Error("ListPackages: repository error for studio id=%d: %v", studioID, err)
		return nil, fmt.Errorf("%w: ListPackages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackageList(studioID, packages), nil
}

// GetPackage получает пакет по ID
func (s *Service) GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetPackage: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPackage - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPackage(pkg), nil
}

// CreatePackage создает пакет услуг студии
func (s *Service) CreatePackage(ctx context.Context, studioID int64, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("CreatePackage: creating package name=%q for studio id=%d", req.Name, studioID)

	if err := validateCreatePackage(studioID, req); err != nil {
		s.logger.Warn("CreatePackage: validation failed: %v", err)
		return nil, err
	}

	pkg, err := s.packageRepo.Create(ctx, &domain.Package{
		StudioID:        studioID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, packageRepo.ErrStudioNotFound) {
			s.logger.Warn("CreatePackage: studio id=%d not found", studioID)
			return nil, ErrStudioNotFound
		}
		s.logger.Error("CreatePackage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePackage: successfully created package id=%d", pkg.ID)
	return models.FromDomainPackage(pkg), nil
}

// DeletePackage удаляет пакет, если на него нет бронирований
func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	s.logger.Info("DeletePackage: deleting package id=%d", id)

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, packageRepo.ErrPackageNotFound):
			return ErrPackageNotFound
		case errors.Is(err, packageRepo.ErrInUse):
			s.logger.Warn("DeletePackage: package id=%d is referenced by bookings", id)
			return ErrInUse
		default:
			s.logger.Error("DeletePackage: repository error for package id=%d: %v", id, err)
			return fmt.Errorf("%w: DeletePackage - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeletePackage: successfully deleted package id=%d", id)
	return nil
}

func (s *Service) getStudio(ctx context.Context, op string, id int64) (*domain.Studio, error) {
	studio, err := s.studioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, studioRepo.ErrStudioNotFound) {
			s.logger.Warn("%s: studio id=%d not found", op, id)
			return nil, ErrStudioNotFound
		}
		s.logger.Error("%s: repository error for studio id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return studio, nil
}
