package tui

import "github.com/MKhiriev/go-note-sync/models"

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// authResult finishes a sign-in or sign-up attempt.
type authResult struct {
	login    string
	register bool
	err      error
}

// signedOutNotice tells the menu the session ended.
type signedOutNotice struct{}

// statusNotice carries a one-line outcome to the page being returned to.
type statusNotice struct {
	text   string
	failed bool
}

// viewMsg delivers a refreshed snapshot of a collection.
type viewMsg struct {
	collection models.Collection
	view       models.Snapshot
}

// streamErrMsg reports a broken subscription of a collection.
type streamErrMsg struct {
	collection models.Collection
	err        error
}

type submitDoneMsg struct {
	id  string
	err error
}

type deleteDoneMsg struct {
	err error
}

type profileLoadedMsg struct {
	record models.Record
	err    error
}

type profileSavedMsg struct {
	url string
	err error
}
