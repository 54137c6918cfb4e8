package user

type User struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Names    string `json:"names" gorm:"size:80;not null"`
	LastName string `json:"last_name" gorm:"size:80;not null"`
	Age      int    `json:"age" gorm:"not null"`
	Email    string `json:"email" gorm:"size:120;not null;uniqueIndex"`
	// Password holds a bcrypt hash.
	Password string `json:"-" gorm:"size:80;not null"`
}
