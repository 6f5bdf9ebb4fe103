package entity

type Category string

// AllCategories is the directory filter sentinel that matches every club.
const AllCategories Category = "All Categories"

const (
	CategoryAcademic           Category = "Academic"
	CategoryArtsCulture        Category = "Arts & Culture"
	CategoryCommunityService   Category = "Community Service"
	CategoryGamingEsports      Category = "Gaming & Esports"
	CategoryHealthWellness     Category = "Health & Wellness"
	CategoryPoliticalAdvocacy  Category = "Political & Advocacy"
	CategoryProfessional       Category = "Professional"
	CategoryRecreationSports   Category = "Recreation & Sports"
	CategoryReligiousSpiritual Category = "Religious & Spiritual"
	CategorySocial             Category = "Social"
	CategoryOther              Category = "Other"
)

// Categories is the closed set a club may be filed under, in display order.
var Categories = []Category{
	CategoryAcademic,
	CategoryArtsCulture,
	CategoryCommunityService,
	CategoryGamingEsports,
	CategoryHealthWellness,
	CategoryPoliticalAdvocacy,
	CategoryProfessional,
	CategoryRecreationSports,
	CategoryReligiousSpiritual,
	CategorySocial,
	CategoryOther,
}

// Valid reports whether c is unset or one of Categories.
func (c Category) Valid() bool {
	if c == "" {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
