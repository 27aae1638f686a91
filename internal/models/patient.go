package models

// Patient is a profile keyed by the owning user's id (one-to-one).
// SerialNumber is the externally facing 8-digit identifier assigned at
// creation, distinct from the internal id.
type Patient struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:120" json:"full_name"`
	Age          int    `json:"age"`
	Gender       string `gorm:"size:20" json:"gender"`
	Phone        string `gorm:"size:20" json:"phone"`
	BloodGroupID *uint  `json:"blood_group_id"`
	Address      string `gorm:"size:256" json:"address"`
	SerialNumber int    `gorm:"uniqueIndex" json:"serial_number"`

	// Relations
	BloodGroup   *BloodGroup   `gorm:"foreignKey:BloodGroupID" json:"blood_group,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
