package run

const (
	exitCodeSuccess = 0
	exitCodeExecErr = 1
	exitCodeConfig  = 2
)

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }
