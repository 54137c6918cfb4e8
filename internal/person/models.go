package person

import "starwars-server/internal/planet"

type Person struct {
	ID          int            `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"size:250;not null"`
	Height      string         `gorm:"size:100"`
	Mass        string         `gorm:"size:100"`
	HairColor   string         `gorm:"size:100"`
	SkinColor   string         `gorm:"size:100"`
	EyeColor    string         `gorm:"size:100"`
	BirthYear   string         `gorm:"size:100"`
	Gender      string         `gorm:"size:50"`
	HomeworldID *int           `gorm:"index"`
	Homeworld   *planet.Planet `gorm:"foreignKey:HomeworldID;constraint:OnDelete:SET NULL"`
}

// TableName keeps the table name stable regardless of the naming strategy's pluralization.
func (Person) TableName() string {
	return "people"
}

// Response is the wire form of a Person: the homeworld is reported by name.
type Response struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Height    string  `json:"height"`
	Mass      string  `json:"mass"`
	HairColor string  `json:"hair_color"`
	SkinColor string  `json:"skin_color"`
	EyeColor  string  `json:"eye_color"`
	BirthYear string  `json:"birth_year"`
	Gender    string  `json:"gender"`
	Homeworld *string `json:"homeworld"`
}

// ToResponse expects Homeworld to be preloaded.
func (p *Person) ToResponse() Response {
	resp := Response{
		ID:        p.ID,
		Name:      p.Name,
		Height:    p.Height,
		Mass:      p.Mass,
		HairColor: p.HairColor,
		SkinColor: p.SkinColor,
		EyeColor:  p.EyeColor,
		BirthYear: p.BirthYear,
		Gender:    p.Gender,
	}
	if p.Homeworld != nil {
		name := p.Homeworld.Name
		resp.Homeworld = &name
	}
	return resp
}

// CreateRequest is the body of POST /people.
type CreateRequest struct {
	Name        string `json:"name"`
	Height      string `json:"height"`
	Mass        string `json:"mass"`
	HairColor   string `json:"hair_color"`
	SkinColor   string `json:"skin_color"`
	EyeColor    string `json:"eye_color"`
	BirthYear   string `json:"birth_year"`
	Gender      string `json:"gender"`
	HomeworldID *int   `json:"homeworld_id"`
}

func (r CreateRequest) toPerson() *Person {
	return &Person{
		Name:        r.Name,
		Height:      r.Height,
		Mass:        r.Mass,
		HairColor:   r.HairColor,
		SkinColor:   r.SkinColor,
		EyeColor:    r.EyeColor,
		BirthYear:   r.BirthYear,
		Gender:      r.Gender,
		HomeworldID: r.HomeworldID,
	}
}
