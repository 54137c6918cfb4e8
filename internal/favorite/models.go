package favorite

import (
	"starwars-server/internal/person"
	"starwars-server/internal/planet"
	"starwars-server/internal/user"
)

// Favorite links a user to exactly one planet or one person.
// Deleting the target nulls the reference; such rows are skipped when listing.
type Favorite struct {
	ID       int            `gorm:"primaryKey;autoIncrement"`
	UserID   int            `gorm:"not null;uniqueIndex:idx_favorites_user_planet;uniqueIndex:idx_favorites_user_people"`
	PeopleID *int           `gorm:"column:people_id;uniqueIndex:idx_favorites_user_people"`
	PlanetID *int           `gorm:"uniqueIndex:idx_favorites_user_planet"`
	User     *user.User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Person   *person.Person `gorm:"foreignKey:PeopleID;constraint:OnDelete:SET NULL"`
	Planet   *planet.Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:SET NULL"`
}

// Kind distinguishes the two favorite targets.
type Kind string

const (
	KindPlanet Kind = "planet"
	KindPeople Kind = "people"
)

func (k Kind) column() string {
	if k == KindPlanet {
		return "planet_id"
	}
	return "people_id"
}

// ListResponse is the body of GET /users/favorites.
type ListResponse struct {
	Planets []planet.Planet   `json:"planets"`
	People  []person.Response `json:"people"`
}
