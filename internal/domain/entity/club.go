package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Club struct {
	ID               string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt        time.Time      `json:"created_date"`
	UpdatedAt        time.Time      `json:"updated_date"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Name             string         `gorm:"not null" json:"name"`
	Description      string         `gorm:"not null" json:"description"`
	Category         Category       `json:"category"`
	LogoURL          string         `json:"logo_url"`
	ContactName      string         `json:"contact_name"`
	ContactEmail     string         `gorm:"not null" json:"contact_email"`
	WebsiteLink      string         `json:"website_link"`
	InstagramLink    string         `json:"instagram_link"`
	DiscordLink      string         `json:"discord_link"`
	CalendarLink     string         `json:"calendar_link"`
	OtherSocialLinks pq.StringArray `gorm:"type:text[]" json:"other_social_links"`
	// OwnerEmail points at User.Email. At most one club per owner; the
	// service checks this before create, the store does not.
	OwnerEmail string `gorm:"not null;index" json:"owner_email"`
	IsActive   bool   `gorm:"not null" json:"is_active"`
}

func (c *Club) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Initial returns the upper-cased first letter of the club name, used when
// the club has no logo.
func (c *Club) Initial() string {
	name := strings.TrimSpace(c.Name)
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
