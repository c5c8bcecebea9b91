package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

// newID fills an empty string primary key before insert.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// gorm hooks, ids are uuid strings like the admin UI expects
func (s *Store) BeforeCreate(tx *gorm.DB) error     { newID(&s.ID); return nil }
func (b *Billboard) BeforeCreate(tx *gorm.DB) error { newID(&b.ID); return nil }
func (c *Category) BeforeCreate(tx *gorm.DB) error  { newID(&c.ID); return nil }
func (c *Color) BeforeCreate(tx *gorm.DB) error     { newID(&c.ID); return nil }
func (s *Size) BeforeCreate(tx *gorm.DB) error      { newID(&s.ID); return nil }
func (p *Product) BeforeCreate(tx *gorm.DB) error   { newID(&p.ID); return nil }
func (i *Image) BeforeCreate(tx *gorm.DB) error     { newID(&i.ID); return nil }
func (o *Order) BeforeCreate(tx *gorm.DB) error     { newID(&o.ID); return nil }
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error { newID(&i.ID); return nil }
