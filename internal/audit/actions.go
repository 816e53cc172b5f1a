package audit

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentConflict      = "appointment_conflict"
	ActionAppointmentStatusChanged = "appointment_status_changed"
	ActionAppointmentRescheduled   = "appointment_rescheduled"
	ActionAppointmentDeleted       = "appointment_deleted"
	ActionSalonCapacityUpdated     = "salon_capacity_updated"

	EntityAppointment   = "appointment"
	EntitySalonSettings = "salon_settings"
)
