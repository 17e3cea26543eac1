package buildpipeline

// ChannelSink forwards events into a channel for the TUI pump.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent implements ProgressSink.
func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink; plain-mode output uses it.
type SinkFunc func(Event)

// OnEvent implements ProgressSink.
func (f SinkFunc) OnEvent(evt Event) {
	if f == nil {
		return
	}
	f(evt)
}

// emit forwards an event to the request's sink, if any.
func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
