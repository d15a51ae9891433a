package domain

// ClientMessage is what a subscribed websocket client may send.
type ClientMessage struct {
	Type string   `json:"type"`
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	Mode GameMode `json:"mode,omitempty"`
}

type ServerMessage struct {
	Type     string     `json:"type"`
	Message  string     `json:"message,omitempty"`
	GameID   string     `json:"gameId,omitempty"`
	State    *GameState `json:"state,omitempty"`
	Summary  *Summary   `json:"summary,omitempty"`
	Player   Cell       `json:"player,omitempty"`
	Move     *Position  `json:"move,omitempty"`
	Captured []Position `json:"captured,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	MsgState    = "state"
	MsgMoveMade = "move_made"
	MsgGameOver = "game_over"
	MsgError    = "error"

	MsgMakeMove = "make_move"
	MsgRestart  = "restart"
)
