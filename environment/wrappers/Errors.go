package wrappers

import "errors"

// ErrResetNeeded is returned by OrderEnforcing when an environment is
// stepped or rendered before it has been reset
var ErrResetNeeded = errors.New("cannot call env.step() before calling " +
	"env.reset()")

// ErrNilEnv is returned when a wrapper is constructed around a nil
// environment
var ErrNilEnv = errors.New("cannot wrap a nil environment")

// ErrStatsKeyExists is returned by RecordEpisodeStatistics when the
// info of an episode's last step already holds its statistics key
var ErrStatsKeyExists = errors.New("attempted to add episode stats when " +
	"they already exist")

// IsResetNeeded returns whether or not an error reports that an
// environment was used before being reset
func IsResetNeeded(err error) bool {
	return errors.Is(err, ErrResetNeeded)
}

// IsStatsKeyExists returns whether or not an error reports that
// episode statistics could not be recorded because the statistics key
// was already in use
func IsStatsKeyExists(err error) bool {
	return errors.Is(err, ErrStatsKeyExists)
}
