package view

// FlashKind selects the banner style a flash renders with. The kinds map
// to the portal's outcomes: success (logged in, invoice extracted), info
// (logged out), warning (upload pre-checks, login required), error
// (backend failures surfaced from the extraction client).
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot notification carried across a redirect in a signed
// cookie and shown exactly once on the next rendered page.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}
