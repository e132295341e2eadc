package wheel

import (
	"fmt"
	"time"
)

// Modal identifies the overlay on screen. At most one is open.
type Modal int

const (
	ModalNone Modal = iota
	ModalWinner
	ModalResults
)

func (e *Engine) openModal(m Modal, name string, at time.Time) {
	e.modal = m
	e.modalName = name
	e.modalOpened = at
	e.log.Debug().Int("modal", int(m)).Str("name", name).Msg("modal opened")
}

// Modal returns the overlay currently shown.
func (e *Engine) Modal() Modal { return e.modal }

// ModalOpen gates the keyboard: Enter acknowledges instead of spinning.
func (e *Engine) ModalOpen() bool { return e.modal != ModalNone }

// Acknowledge closes the open modal. It reports whether one was open.
func (e *Engine) Acknowledge() bool {
	if e.modal == ModalNone {
		return false
	}
	e.modal = ModalNone
	e.modalName = ""
	return true
}

// WinnerName is the full name behind the winner modal.
func (e *Engine) WinnerName() string {
	if e.modal != ModalWinner {
		return ""
	}
	return e.modalName
}

// TypedText returns the part of the winner's name revealed so far: one more
// rune every TypeInterval after the modal opened.
func (e *Engine) TypedText() string {
	if e.modal != ModalWinner {
		return ""
	}
	runes := []rune(e.modalName)
	if e.timing.TypeInterval <= 0 {
		return e.modalName
	}
	n := int(e.clock.Now().Sub(e.modalOpened) / e.timing.TypeInterval)
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// ResultLines numbers the winners from 1 in draw order.
func (e *Engine) ResultLines() []string {
	lines := make([]string, len(e.winners))
	for i, name := range e.winners {
		lines[i] = fmt.Sprintf("%d. %s", i+1, name)
	}
	return lines
}
