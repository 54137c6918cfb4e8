package planet

type Planet struct {
	ID             int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string `json:"name" gorm:"size:250;not null"`
	RotationPeriod string `json:"rotation_period" gorm:"size:100"`
	OrbitalPeriod  string `json:"orbital_period" gorm:"size:100"`
	Diameter       string `json:"diameter" gorm:"size:100"`
	Climate        string `json:"climate" gorm:"size:100"`
	Gravity        string `json:"gravity" gorm:"size:100"`
	Terrain        string `json:"terrain" gorm:"size:100"`
	SurfaceWater   string `json:"surface_water" gorm:"size:100"`
	Population     string `json:"population" gorm:"size:100"`
}

// CreateRequest is the body of POST /planets.
type CreateRequest struct {
	Name           string `json:"name"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Diameter       string `json:"diameter"`
	Climate        string `json:"climate"`
	Gravity        string `json:"gravity"`
	Terrain        string `json:"terrain"`
	SurfaceWater   string `json:"surface_water"`
	Population     string `json:"population"`
}

func (r CreateRequest) toPlanet() *Planet {
	return &Planet{
		Name:           r.Name,
		RotationPeriod: r.RotationPeriod,
		OrbitalPeriod:  r.OrbitalPeriod,
		Diameter:       r.Diameter,
		Climate:        r.Climate,
		Gravity:        r.Gravity,
		Terrain:        r.Terrain,
		SurfaceWater:   r.SurfaceWater,
		Population:     r.Population,
	}
}
