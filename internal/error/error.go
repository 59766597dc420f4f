package error

import "fmt"

const (
	CodeOutOfBounds uint8 = iota + 1
	CodeAlreadyTargeted
	CodeInvalidPlacement
	CodeGenerationExhausted
)

// BoardErr is returned for every rule violation of a board. Two BoardErr
// values match under errors.Is when their codes are equal, so callers can
// compare against the sentinels below regardless of the description.
type BoardErr struct {
	code uint8
	desc string
}

var (
	ErrOutOfBounds         = NewBoardErr(CodeOutOfBounds)
	ErrAlreadyTargeted     = NewBoardErr(CodeAlreadyTargeted)
	ErrInvalidPlacement    = NewBoardErr(CodeInvalidPlacement)
	ErrGenerationExhausted = NewBoardErr(CodeGenerationExhausted)
)

func NewBoardErr(code uint8) BoardErr {
	return BoardErr{code: code}
}

func (b BoardErr) AddDesc(desc string) BoardErr {
	b.desc = desc
	return b
}

func (b BoardErr) Code() uint8 {
	return b.code
}

func (b BoardErr) Error() string {
	if b.desc == "" {
		return b.message()
	}
	return fmt.Sprintf("%s: %s", b.message(), b.desc)
}

// Message is the short text shown to a human player.
func (b BoardErr) Message() string {
	return b.message()
}

func (b BoardErr) message() string {
	switch b.code {
	case CodeOutOfBounds:
		return "shot off the board"
	case CodeAlreadyTargeted:
		return "cell already targeted"
	case CodeInvalidPlacement:
		return "ship cannot be placed here"
	case CodeGenerationExhausted:
		return "board generation ran out of attempts"
	default:
		return "board error"
	}
}

func (b BoardErr) Is(target error) bool {
	t, ok := target.(BoardErr)
	if !ok {
		return false
	}
	return b.code == t.code
}

func ErrXorYOutOfGridBound(x, y int) error {
	return ErrOutOfBounds.AddDesc(fmt.Sprintf("x: %d\ty: %d", x, y))
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return ErrAlreadyTargeted.AddDesc(fmt.Sprintf("x: %d\ty: %d", x, y))
}

func ErrShipPlacement(x, y int) error {
	return ErrInvalidPlacement.AddDesc(fmt.Sprintf("cell taken or off the grid\tx: %d\ty: %d", x, y))
}

func ErrAttemptsExceeded(attempts int) error {
	return ErrGenerationExhausted.AddDesc(fmt.Sprintf("attempts: %d", attempts))
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil")
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session not found, id: %s", sessionId)
}
