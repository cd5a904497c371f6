package profiles

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// ValidationError reports a request rejected before any write.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// List returns the whole collection in arrival order.
func (s *ProfileService) List() ([]Profile, error) {
	profiles := make([]Profile, 0)
	if err := s.db.Order("created_at ASC").Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileService) Get(id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileService) Create(req ProfileRequest) (*Profile, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	p := Profile{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}

	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

// Update replaces name, email and age. Location and address are only replaced
// when the request carries a coordinate, so clients without a map keep them intact.
func (s *ProfileService) Update(id uuid.UUID, req ProfileRequest) (*Profile, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Email = req.Email
	p.Age = req.Age
	if req.Latitude != nil && req.Longitude != nil {
		p.Latitude = req.Latitude
		p.Longitude = req.Longitude
		p.Address = req.Address
	}

	if err := s.db.Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&Profile{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
