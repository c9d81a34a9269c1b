package domain

// CanMutate reports whether the identity may update or delete the event:
// admins may mutate any event, everyone else only the events they organize.
func CanMutate(identity *Identity, event *Event) bool {
	if identity == nil || event == nil {
		return false
	}
	return identity.Role == RoleAdmin || identity.ID == event.OrganizerID
}

// CanManageBooking reports whether the identity may act on the booking.
func CanManageBooking(identity *Identity, booking *Booking) bool {
	if identity == nil || booking == nil {
		return false
	}
	return identity.Role == RoleAdmin || identity.ID == booking.UserID
}
