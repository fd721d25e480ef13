package domain

import "github.com/google/uuid"

// ConfigKeyRegistrationWeekLimit bounds how many working-slot registrations a
// staff member may place inside one Monday-to-Sunday week.
const ConfigKeyRegistrationWeekLimit = "REGISTRATION_WEEK_LIMIT"

type Config struct {
	ID    uuid.UUID `json:"id"`
	Key   string    `json:"key"`
	Value string    `json:"value"`
}
