package config

import (
	"fmt"

	"github.com/eykd/nanoid-go/internal/domain"
)

var (
	// ErrAlphabetAndPreset is returned when both an explicit alphabet and a
	// preset name are configured.
	ErrAlphabetAndPreset = fmt.Errorf("%w: alphabet and preset are mutually exclusive", domain.ErrInvalidArgument)

	// ErrInvalidEnv is returned when an environment override cannot be parsed.
	ErrInvalidEnv = fmt.Errorf("%w: environment override", domain.ErrInvalidArgument)
)
