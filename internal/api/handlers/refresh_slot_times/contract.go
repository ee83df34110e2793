package refresh_slot_times

type SlotTimesService interface {
	Invalidate()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
