package services

import (
	"context"
	"io"
	"strings"

	"rentdesk/errors"
	"rentdesk/models"
	"rentdesk/repository"
	"rentdesk/services/logger"
	"rentdesk/validator"
)

// BuildingInput holds the editable building fields.
type BuildingInput struct {
	Name          string
	Address       string
	ContactEmail  string
	ContactNumber string
}

type BuildingService struct {
	store  *repository.Store
	locks  *KeyedLocker
	logger logger.Logger
	media  MediaUploader
}

func NewBuildingService(opts ServiceOptions, media MediaUploader) *BuildingService {
	opts = opts.withDefaults()
	return &BuildingService{
		store:  opts.Store,
		locks:  opts.Locker,
		logger: opts.Logger,
		media:  media,
	}
}

func (in BuildingInput) apply(b *models.Building) {
	b.Name = strings.TrimSpace(in.Name)
	b.Address = strings.TrimSpace(in.Address)
	b.ContactEmail = strings.ToLower(strings.TrimSpace(in.ContactEmail))
	b.ContactNumber = strings.TrimSpace(in.ContactNumber)
}

func (s *BuildingService) CreateBuilding(ctx context.Context, in BuildingInput) (*models.Building, error) {
	b := &models.Building{}
	in.apply(b)
	if err := validator.ValidateBuilding(b); err != nil {
		return nil, err
	}
	if err := s.store.CreateBuilding(ctx, b); err != nil {
		return nil, err
	}
	s.logger.Info("building %d (%s) created", b.ID, b.Name)
	return b, nil
}

func (s *BuildingService) UpdateBuilding(ctx context.Context, id uint, in BuildingInput) (*models.Building, error) {
	var b *models.Building
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		b, err = tx.GetBuildingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		in.apply(b)
		if err := validator.ValidateBuilding(b); err != nil {
			return err
		}
		return tx.SaveBuilding(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBuilding refuses while the building still owns rooms.
func (s *BuildingService) DeleteBuilding(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.GetBuildingForUpdate(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountRoomsInBuilding(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.ErrBuildingHasRooms
		}
		return tx.DeleteBuilding(ctx, id)
	})
}

func (s *BuildingService) GetBuilding(ctx context.Context, id uint) (*models.Building, error) {
	return s.store.GetBuilding(ctx, id)
}

func (s *BuildingService) ListBuildings(ctx context.Context) ([]models.Building, error) {
	return s.store.ListBuildings(ctx)
}

// SetImage uploads the image and stores its URL on the building.
func (s *BuildingService) SetImage(ctx context.Context, id uint, filename string, file io.Reader) (*models.Building, error) {
	if s.media == nil {
		return nil, errors.Unavailable("media storage is not configured", nil)
	}
	if _, err := s.store.GetBuilding(ctx, id); err != nil {
		return nil, err
	}
	url, err := s.media.Upload(ctx, "buildings", filename, file)
	if err != nil {
		s.logger.Error("upload image for building %d: %v", id, err)
		return nil, errors.Unavailable("image upload failed", err)
	}

	var b *models.Building
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		b, err = tx.GetBuildingForUpdate(ctx, id)
		if err != nil {
			return err
		}
		b.Image = url
		return tx.SaveBuilding(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
