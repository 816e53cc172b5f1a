package models

// SchedulingEntry mirrors a confirmed appointment for availability lookups.
type SchedulingEntry struct {
	BaseModel

	AppointmentDate string `gorm:"size:10;not null;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:8;not null" json:"appointment_time"`
	Duration        string `gorm:"size:40;not null" json:"duration"`
	AppointmentID   string `gorm:"size:36;not null;uniqueIndex" json:"appointment_id"`
}
