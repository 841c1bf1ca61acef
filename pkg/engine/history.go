package engine

import (
	"github.com/mnoyd/cotulenh-engine/pkg/apply"
	"github.com/mnoyd/cotulenh-engine/pkg/board"
)

// entry pairs an applied move with the record needed to undo it, replacing the teacher's
// persistent linked-list node chain: this engine has no search tree to fork from, so a
// flat slice is simpler and still supports deploy-session reversibility.
type entry struct {
	move board.Move
	undo apply.UndoRecord
}

// History is the ordered list of moves applied since the engine's current game began.
type History []board.Move
