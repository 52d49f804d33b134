package domain

import "fmt"

// Board is the closed set of community boards. Like Category, filtering is an
// exact match on the board value.
type Board string

const (
	BoardLocalEvents   Board = "local-events"
	BoardBuySell       Board = "buy-sell"
	BoardJobs          Board = "jobs"
	BoardLostFound     Board = "lost-found"
	BoardFishing       Board = "fishing"
	BoardLocalServices Board = "local-services"
)

// Boards lists every valid board in display order.
var Boards = []Board{
	BoardLocalEvents,
	BoardBuySell,
	BoardJobs,
	BoardLostFound,
	BoardFishing,
	BoardLocalServices,
}

func (b Board) Valid() bool {
	for _, k := range Boards {
		if b == k {
			return true
		}
	}
	return false
}

func (b Board) String() string { return string(b) }

// ParseBoard returns the Board for s, or an error when s is not one of the
// known values. Callers treat "no board" as a nil *Board.
func ParseBoard(s string) (Board, error) {
	b := Board(s)
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBoard, s)
	}
	return b, nil
}

// CommunityPost is one listing on a community board.
type CommunityPost struct {
	ID       int64  `json:"id"`
	Board    Board  `json:"board"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Image    string `json:"image,omitempty"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}
