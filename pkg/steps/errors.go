package steps

import (
	"github.com/pkg/errors"
)

var ErrMissingAPISettings = errors.New("missing api settings")

var ErrMissingChatSettings = errors.New("missing chat settings")
