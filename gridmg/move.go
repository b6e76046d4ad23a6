package gridmg

import (
	"errors"
	"fmt"
	"strings"
)

// Move is a start/end square pair. It carries no piece or capture data;
// MakeMove reports the captured occupant instead.
type Move struct {
	From, To Square
}

// NoMove is returned when no move exists. Both of its squares are off the board.
var NoMove = Move{From: Square{-1, -1}, To: Square{-1, -1}}

// ErrMalformedMove is wrapped by every ParseMove failure.
var ErrMalformedMove = errors.New("malformed move")

// NewMove builds a move from raw coordinates.
func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: Square{fromRow, fromCol}, To: Square{toRow, toCol}}
}

// OnBoard reports whether both squares of the move are on the grid.
func (m Move) OnBoard() bool { return m.From.OnBoard() && m.To.OnBoard() }

// EncodeMove renders coordinates as file+rank twice, e.g. (6,4,5,4) -> "e2e3".
func EncodeMove(fromRow, fromCol, toRow, toCol int) string {
	return string([]byte{
		'a' + byte(fromCol), '8' - byte(fromRow),
		'a' + byte(toCol), '8' - byte(toRow),
	})
}

// String produces the 4-character coordinate form of the move (e.g. "g1f3").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return EncodeMove(m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// DecodeMove is the unchecked inverse of EncodeMove. It assumes four ASCII
// characters in range; use ParseMove for text that has not been validated.
func DecodeMove(s string) Move {
	if len(s) < 4 {
		return NoMove
	}
	return Move{
		From: Square{Row: int('8') - int(s[1]), Col: int(s[0]) - int('a')},
		To:   Square{Row: int('8') - int(s[3]), Col: int(s[2]) - int('a')},
	}
}

// ParseMove converts user text such as "e2e3" into a Move, rejecting
// anything that is not exactly two in-range file/rank pairs.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) != 4 {
		return NoMove, fmt.Errorf("%w: %q: want 4 characters", ErrMalformedMove, movestr)
	}
	for i := 0; i < 4; i += 2 {
		if err := checkAlgebraic(movestr[i : i+2]); err != nil {
			return NoMove, fmt.Errorf("%w: %q: %v", ErrMalformedMove, movestr, err)
		}
	}
	return DecodeMove(movestr), nil
}

func checkAlgebraic(alg string) error {
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' {
		return fmt.Errorf("file %q out of range", file)
	}
	if rank < '1' || rank > '8' {
		return fmt.Errorf("rank %q out of range", rank)
	}
	return nil
}
