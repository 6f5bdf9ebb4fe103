package dto

import (
	"strings"

	"github.com/lib/pq"

	"github.com/Badsnus/club-directory/internal/domain/entity"
)

// ClubForm is what a club leader submits from the portal. OtherSocialLinks
// holds one link per line.
type ClubForm struct {
	Name             string `json:"name" validate:"required,clubname"`
	Description      string `json:"description" validate:"required,max=4000"`
	Category         string `json:"category" validate:"category"`
	LogoURL          string `json:"logo_url" validate:"omitempty,url"`
	ContactName      string `json:"contact_name" validate:"max=120"`
	ContactEmail     string `json:"contact_email" validate:"required,email"`
	WebsiteLink      string `json:"website_link" validate:"omitempty,url"`
	InstagramLink    string `json:"instagram_link" validate:"omitempty,url"`
	DiscordLink      string `json:"discord_link" validate:"omitempty,url"`
	CalendarLink     string `json:"calendar_link" validate:"omitempty,url"`
	OtherSocialLinks string `json:"other_social_links" validate:"max=2000"`
}

// FormFromClub fills the form with the current club values, as the edit
// screen does.
func FormFromClub(club *entity.Club) ClubForm {
	return ClubForm{
		Name:             club.Name,
		Description:      club.Description,
		Category:         string(club.Category),
		LogoURL:          club.LogoURL,
		ContactName:      club.ContactName,
		ContactEmail:     club.ContactEmail,
		WebsiteLink:      club.WebsiteLink,
		InstagramLink:    club.InstagramLink,
		DiscordLink:      club.DiscordLink,
		CalendarLink:     club.CalendarLink,
		OtherSocialLinks: strings.Join(club.OtherSocialLinks, "\n"),
	}
}

// Apply copies the editable fields onto club. Ownership and activation are
// never touched by a form.
func (f ClubForm) Apply(club *entity.Club) {
	club.Name = strings.TrimSpace(f.Name)
	club.Description = strings.TrimSpace(f.Description)
	club.Category = entity.Category(f.Category)
	club.LogoURL = strings.TrimSpace(f.LogoURL)
	club.ContactName = strings.TrimSpace(f.ContactName)
	club.ContactEmail = strings.TrimSpace(f.ContactEmail)
	club.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	club.InstagramLink = strings.TrimSpace(f.InstagramLink)
	club.DiscordLink = strings.TrimSpace(f.DiscordLink)
	club.CalendarLink = strings.TrimSpace(f.CalendarLink)
	club.OtherSocialLinks = splitLines(f.OtherSocialLinks)
}

func splitLines(s string) pq.StringArray {
	links := pq.StringArray{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			links = append(links, line)
		}
	}
	return links
}

// ClubFilter is an equality predicate over clubs; zero fields are ignored.
type ClubFilter struct {
	ID         string
	OwnerEmail string
	IsActive   *bool
}
