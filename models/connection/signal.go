package connection

const (
	CodeSessionID uint8 = iota
	CodeBoards
	CodeAttack
	CodeShotResult
	CodeShotRejected
	CodeEndGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Signal is the part of every client message read before the payload.
// Code is nil when the field is missing.
type Signal struct {
	Code *uint8 `json:"code"`
}
