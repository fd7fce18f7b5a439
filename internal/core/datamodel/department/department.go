package department

type Department struct {
	ID       int64   `gorm:"primaryKey"`
	Name     string  `gorm:"column:name;not null"`
	Code     string  `gorm:"column:code;uniqueIndex;not null"`
	Location *string `gorm:"column:location"`
	Head     *string `gorm:"column:head"`
	Email    *string `gorm:"column:email"`
	Phone    *string `gorm:"column:phone"`
}

func (Department) TableName() string {
	return "departments"
}
