package appointment

// Occupies reports whether an appointment starting at apptStart and lasting
// durationMin minutes blocks the slot starting at slotStart. The end side is
// closed: an appointment ending exactly when the slot starts still blocks it.
func Occupies(apptStart, durationMin, slotStart int) bool {
	slotEnd := slotStart + SlotMinutes
	apptEnd := apptStart + durationMin
	return apptStart < slotEnd && slotStart <= apptEnd
}
