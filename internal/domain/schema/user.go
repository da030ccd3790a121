package schema

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is the backend's user object. The bot only ever inspects the email;
// the rest of the payload is carried opaquely.
type User struct {
	Email string
	Raw   json.RawMessage
}

// Receipt is the bot-local record of a successfully submitted response.
type Receipt struct {
	ID          uuid.UUID
	UserID      int64
	FormID      string
	SubmittedAt time.Time
}
