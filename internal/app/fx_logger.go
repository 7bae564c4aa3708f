package app

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// fxLogger routes fx lifecycle events into zerolog. Successful wiring steps
// are logged at debug so startup output stays short.
type fxLogger struct {
	log zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Provided:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("constructor", e.ConstructorName).Msg("provide failed")
			return
		}
		l.log.Debug().Str("constructor", e.ConstructorName).Strs("types", e.OutputTypeNames).Msg("provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("function", e.FunctionName).Msg("invoke failed")
		}
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("caller", e.CallerName).Msg("start hook failed")
			return
		}
		l.log.Debug().Str("caller", e.CallerName).Dur("runtime", e.Runtime).Msg("start hook executed")
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Str("caller", e.CallerName).Msg("stop hook failed")
			return
		}
		l.log.Debug().Str("caller", e.CallerName).Dur("runtime", e.Runtime).Msg("stop hook executed")
	case *fxevent.RolledBack:
		l.log.Error().Err(e.Err).Msg("start failed, rolling back")
	case *fxevent.Started:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Msg("start failed")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			l.log.Error().Err(e.Err).Msg("stop failed")
		}
	}
}
