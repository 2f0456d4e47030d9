package domain

// Role of the user performing an operation
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	return r == RoleClient || r == RolePhotographer || r == RoleAdmin
}

// Actor identifies who requested a status change
type Actor struct {
	UserID string
	Role   Role
}

// CanTransitionBooking проверяет, имеет ли актор право выполнить переход
// статуса для данного бронирования:
//   - подтверждает и отклоняет только фотограф, на которого оформлена заявка;
//   - отменить может владелец-клиент, фотограф или администратор.
func (a Actor) CanTransitionBooking(b *Booking, target BookingStatus) bool {
	if a.Role == RoleAdmin {
		return true
	}

	switch target {
	case StatusConfirmed, StatusDeclined:
		return a.Role == RolePhotographer && a.UserID == b.PhotographerID
	case StatusCancelled:
		if a.Role == RoleClient {
			return a.UserID == b.ClientID
		}
		if a.Role == RolePhotographer {
			return a.UserID == b.PhotographerID
		}
	}
	return false
}

// CanViewBooking проверяет право на чтение бронирования
func (a Actor) CanViewBooking(b *Booking) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.UserID == b.ClientID || a.UserID == b.PhotographerID
}

// CanDeleteBooking проверяет право на физическое удаление записи.
// Доступно владельцу-клиенту и администратору.
func (a Actor) CanDeleteBooking(b *Booking) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleClient && a.UserID == b.ClientID
}
