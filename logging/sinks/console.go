package sinks

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"tilesmith/logging"
)

// Console renders events through a logrus logger, one line per event with
// the payload flattened into fields.
type Console struct {
	logger *logrus.Logger
}

func NewConsole(w io.Writer) *Console {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Console{logger: logger}
}

func (s *Console) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	fields := logrus.Fields{
		"tick":  event.Tick,
		"actor": formatEntity(event.Actor),
	}
	if event.Category != "" {
		fields["category"] = event.Category
	}
	if event.Payload != nil {
		fields["payload"] = event.Payload
	}
	for k, v := range event.Extra {
		fields[k] = v
	}
	entry := s.logger.WithFields(fields)
	switch event.Severity {
	case logging.SeverityDebug:
		entry.Debug(string(event.Type))
	case logging.SeverityWarn:
		entry.Warn(string(event.Type))
	case logging.SeverityError:
		entry.Error(string(event.Type))
	default:
		entry.Info(string(event.Type))
	}
	return nil
}

func (s *Console) Close(context.Context) error {
	return nil
}

func formatEntity(ref logging.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return string(ref.Kind) + ":" + ref.ID
}
