package apperrors

// 错误码
const (
	ErrCodeUnknown            = 1000
	ErrCodeNoPlayers          = 1001
	ErrCodeInvalidPlayerCount = 1002
	ErrCodeInvalidMode        = 1003
	ErrCodeAlreadyStarted     = 1004
	ErrCodeSessionFinished    = 1005
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNoPlayers          = &GameError{Code: ErrCodeNoPlayers, Message: "没有可用的玩家，无法开始回合"}
	ErrInvalidPlayerCount = &GameError{Code: ErrCodeInvalidPlayerCount, Message: "玩家数量必须在 1 到 4 之间"}
	ErrInvalidMode        = &GameError{Code: ErrCodeInvalidMode, Message: "未知的游戏模式"}
	ErrAlreadyStarted     = &GameError{Code: ErrCodeAlreadyStarted, Message: "会话已开始"}
	ErrSessionFinished    = &GameError{Code: ErrCodeSessionFinished, Message: "会话已结束"}
)
