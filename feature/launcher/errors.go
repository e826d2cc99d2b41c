package launcher

import "fmt"

// Stage names the step of the routine that failed.
type Stage string

const (
	StageDirectory Stage = "directory"
	StageSettings  Stage = "settings"
	StageLocate    Stage = "locate"
	StageServe     Stage = "serve"
)

// StartupError is the single failure kind of the launcher.
type StartupError struct {
	Stage Stage
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }
