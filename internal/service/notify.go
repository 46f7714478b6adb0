package service

// Notifier carries user-visible transient notices out of the stores. Every
// failure an operation swallows surfaces through here instead of an error
// return, so the view layer never sees raw internals.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notify(title, message string) {
	f(title, message)
}
