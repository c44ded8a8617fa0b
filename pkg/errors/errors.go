package errors

const (
	CodeNotGitRepo     = "NOT_GIT_REPO"
	CodeNoOriginRemote = "NO_ORIGIN_REMOTE"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeBadCatalog     = "BAD_CATALOG"
	CodeChecksFailed   = "CHECKS_FAILED"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

// Error Creators ///////////////////////////////

// The project directory is not inside a git repository
func NotGitRepo(msg string) error {
	return &codedError{
		code: CodeNotGitRepo,
		msg:  msg,
	}
}

// The git repository has no origin remote
func NoOriginRemote(msg string) error {
	return &codedError{
		code: CodeNoOriginRemote,
		msg:  msg,
	}
}

// A caller passed a value the core contracts reject (negative VRAM, NaN price)
func InvalidInput(msg string) error {
	return &codedError{
		code: CodeInvalidInput,
		msg:  msg,
	}
}

// A pricing catalog violates its algebraic invariants
func BadCatalog(msg string) error {
	return &codedError{
		code: CodeBadCatalog,
		msg:  msg,
	}
}

// One or more doctor checks did not pass
func ChecksFailed(msg string) error {
	return &codedError{
		code: CodeChecksFailed,
		msg:  msg,
	}
}

// Helpers //////////////////////////////////////

func IsValidationError(err error) bool {
	switch Code(err) {
	case CodeNotGitRepo, CodeNoOriginRemote, CodeInvalidInput, CodeChecksFailed:
		return true
	}
	return false
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}

	return ""
}
