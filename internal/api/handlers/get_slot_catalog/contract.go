package get_slot_catalog

type Logger interface {
	Info(format string, v ...interface{})
}
