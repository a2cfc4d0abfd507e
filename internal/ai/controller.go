package ai

import "github.com/udisondev/warband/internal/model"

//go:generate go tool mockgen -destination=../testutil/mocks/ai_mock.go -package=mocks . DialoguePresenter

// Quarry is what enemies detect and chase (the player).
type Quarry interface {
	ID() string
	Position() model.Vec2
	IsDead() bool
}

// DialoguePresenter shows NPC lines. Replaces the global dialogue UI.
type DialoguePresenter interface {
	ShowDialogue(speaker, line string)
	HideDialogue()
}
