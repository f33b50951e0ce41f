package ctxkeys

type Key int

const (
	Printer Key = iota // *i18n.Printer for the request language
	Path               // string: request path, for active navigation links
)
