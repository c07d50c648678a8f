package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"
)

// UnsetRequiredSettingError is used to indicate required settings
// that were not provided through the environment, flags or config file.
type UnsetRequiredSettingError struct {
	error
}

func NewUnsetRequiredSettingError(names ...string) UnsetRequiredSettingError {
	return UnsetRequiredSettingError{
		errors.Errorf("none of the following settings is set: %s", strings.Join(names, ", ")),
	}
}

func (err UnsetRequiredSettingError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}

type InvalidSettingError struct {
	error
}

func NewInvalidSettingError(setting, value string, cause error) InvalidSettingError {
	return InvalidSettingError{errors.Wrapf(cause, "invalid value '%s' of setting %s", value, setting)}
}

func (err InvalidSettingError) Error() string {
	return fmt.Sprintf(tracelog.GetErrorFormatter(), err.error)
}
