package profiles

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is one managed record of the shared "profiles" collection.
// Age stays free text; clients render it as a numeric field but nothing enforces it.
type Profile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Age       string         `gorm:"size:32;not null" json:"age"`
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- DTOs ---

// ProfileRequest carries the full field set for create and replace.
type ProfileRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Age       string   `json:"age"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
}

func (r *ProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Age = strings.TrimSpace(r.Age)
	r.Address = strings.TrimSpace(r.Address)
}

func (r ProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Age, validation.Required),
		validation.Field(&r.Latitude, validation.When(r.Longitude != nil, validation.NotNil), validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Longitude, validation.When(r.Latitude != nil, validation.NotNil), validation.Min(-180.0), validation.Max(180.0)),
	)
}

type ProfileListResponse struct {
	Profiles []Profile `json:"profiles"`
	Total    int       `json:"total"`
}

type CreateProfileResponse struct {
	ID uuid.UUID `json:"id"`
}
