package pile

import "fmt"

// MoveKind classifies the effect of a selection
type MoveKind int

const (
	// MoveNone means the selection changed nothing
	MoveNone MoveKind = iota
	// MoveDraw turned the top stock card onto the waste
	MoveDraw
	// MoveRecycle returned the whole waste to the stock
	MoveRecycle
	// MoveFlip turned a face-down tableau card face-up
	MoveFlip
	// MoveTransfer relocated one or more cards between piles
	MoveTransfer
)

func (k MoveKind) String() string {
	switch k {
	case MoveNone:
		return "none"
	case MoveDraw:
		return "draw"
	case MoveRecycle:
		return "recycle"
	case MoveFlip:
		return "flip"
	case MoveTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Move describes what a selection did so a renderer knows what to redraw
type Move struct {
	Kind  MoveKind
	From  Ref
	To    Ref
	Cards int
}

// Changed reports whether the table state was modified
func (m Move) Changed() bool {
	return m.Kind != MoveNone
}

func (m Move) String() string {
	switch m.Kind {
	case MoveNone:
		return "no move"
	case MoveFlip:
		return fmt.Sprintf("flip %s", m.From)
	default:
		return fmt.Sprintf("%s %d card(s) %s -> %s", m.Kind, m.Cards, m.From, m.To)
	}
}
