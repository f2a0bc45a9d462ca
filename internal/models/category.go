package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a taxonomy node referenced by services and service requests.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug      string     `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	NameDe    string     `gorm:"size:100;not null" json:"name_de"`
	NameEn    string     `gorm:"size:100;not null" json:"name_en"`
	Icon      string     `gorm:"size:50" json:"icon"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Parent    *Category  `gorm:"foreignKey:ParentID" json:"-"`
}

// DefaultCategories seeds the marketplace taxonomy on first boot.
var DefaultCategories = []Category{
	{Slug: "reinigung", NameDe: "Reinigung", NameEn: "Cleaning", Icon: "cleaning", IsActive: true},
	{Slug: "umzug", NameDe: "Umzug", NameEn: "Moving", Icon: "moving", IsActive: true},
	{Slug: "renovierung", NameDe: "Renovierung", NameEn: "Renovation", Icon: "renovation", IsActive: true},
	{Slug: "garten", NameDe: "Garten", NameEn: "Garden", Icon: "garden", IsActive: true},
	{Slug: "elektriker", NameDe: "Elektriker", NameEn: "Electrician", Icon: "electric", IsActive: true},
	{Slug: "klempner", NameDe: "Klempner", NameEn: "Plumber", Icon: "plumbing", IsActive: true},
	{Slug: "maler", NameDe: "Maler", NameEn: "Painter", Icon: "paint", IsActive: true},
	{Slug: "schlosser", NameDe: "Schlosser", NameEn: "Locksmith", Icon: "lock", IsActive: true},
	{Slug: "nachhilfe", NameDe: "Nachhilfe", NameEn: "Tutoring", Icon: "education", IsActive: true},
	{Slug: "fotografie", NameDe: "Fotografie", NameEn: "Photography", Icon: "camera", IsActive: true},
}
