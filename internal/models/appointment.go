package models

import (
	"time"

	"gorm.io/datatypes"
)

type CustomerInfo struct {
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255;index;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`
}

type ServiceDetails struct {
	ID       string `gorm:"size:64" json:"id"`
	Name     string `gorm:"size:120;not null" json:"name"`
	Duration string `gorm:"size:40;not null" json:"duration"`
	Price    string `gorm:"size:40" json:"price"`
	Gender   string `gorm:"size:10;not null" json:"gender"`
}

type RescheduleRecord struct {
	OldDate       string    `json:"old_date"`
	OldTime       string    `json:"old_time"`
	NewDate       string    `json:"new_date"`
	NewTime       string    `json:"new_time"`
	RescheduledBy string    `json:"rescheduled_by"`
	RescheduledAt time.Time `json:"rescheduled_at"`
	Reason        string    `json:"reason,omitempty"`
}

type Appointment struct {
	BaseModel

	UserID *string `gorm:"size:36;index" json:"user_id"`

	Customer CustomerInfo   `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Service  ServiceDetails `gorm:"embedded;embeddedPrefix:service_" json:"service"`

	// Date is a calendar day (YYYY-MM-DD), Time a grid label ("h:mm AM").
	Date string `gorm:"size:10;not null;index:idx_appointment_slot" json:"date"`
	Time string `gorm:"size:8;not null;index:idx_appointment_slot" json:"time"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	RescheduleHistory datatypes.JSONSlice[RescheduleRecord] `json:"reschedule_history"`
}
