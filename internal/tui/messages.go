package tui

import "go-folio/models"

// Messages exchanged between async commands and the models.

type loginResultMsg struct {
	err error
}

type rowsLoadedMsg struct {
	resource resource
	rows     []listRow
	err      error
}

// inboxLoadedMsg carries the full messages next to the rows so the detail
// screen can render without another round trip.
type inboxLoadedMsg struct {
	rowsLoadedMsg
	messages []models.ContactMessage
}

type detailLoadedMsg struct {
	detail detailView
	err    error
}

type formReadyMsg struct {
	form resourceForm
	err  error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
