package entity

type UserStatus int16

const (
	// UserStatusUnknown is mean status is not known / not set.
	UserStatusUnknown UserStatus = 0

	// UserStatusPending mean a secret has been issued but enrollment is not confirmed.
	UserStatusPending UserStatus = 1

	// UserStatusConfirmed mean enrollment is confirmed and login is allowed.
	UserStatusConfirmed UserStatus = 2
)

func (us UserStatus) String() string {
	switch us {
	case UserStatusPending:
		return "Pending"
	case UserStatusConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

func (us UserStatus) IsUnknown() bool {
	switch us {
	case UserStatusPending, UserStatusConfirmed:
		return false
	default:
		return true
	}
}
