package event

const RegistrationEventName = "user_registration_events"

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}
