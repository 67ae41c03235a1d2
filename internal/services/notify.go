package services

// Notifier receives user-facing notifications. It is fire-and-forget.
type Notifier interface {
	Notify(title, description string, isError bool)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, description string, isError bool)

func (f NotifierFunc) Notify(title, description string, isError bool) {
	f(title, description, isError)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, bool) {}
