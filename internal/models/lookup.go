package models

// Small reference entities used by doctor and patient profiles.

type BloodGroup struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	GroupName string `gorm:"uniqueIndex;size:10;not null" json:"group_name"`
}

type Specialization struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;not null" json:"name"`
}

type Institute struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:256;not null" json:"name"`
	Address string `gorm:"size:256" json:"address"`
}

type Qualification struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;not null" json:"name"`
}
