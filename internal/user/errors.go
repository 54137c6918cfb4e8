package user

import "starwars-server/internal/shared/errors"

var ErrEmailInUse = errors.Conflict("Email already in use")
