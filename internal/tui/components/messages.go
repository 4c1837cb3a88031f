package components

import "github.com/trackinhq/trackin/internal/model"

// DaySelectedMsg is sent when a calendar day is chosen.
type DaySelectedMsg struct {
	Day int
}

// MonthChangedMsg is sent when the calendar moves to another month.
type MonthChangedMsg struct{}

// OrderSubmitMsg carries a completed add-order form.
type OrderSubmitMsg struct {
	Draft model.OrderDraft
}

// FormCancelledMsg is sent when a form is dismissed without submitting.
type FormCancelledMsg struct{}

// ConfirmedMsg is sent when a confirmation dialog is accepted.
type ConfirmedMsg struct{}

// CancelledMsg is sent when a confirmation dialog is declined.
type CancelledMsg struct{}
