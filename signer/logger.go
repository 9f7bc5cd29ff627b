package signer

import (
	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/libocr/commontypes"
)

var _ commontypes.Logger = (*logrusLogger)(nil)

type logrusLogger struct {
	logger logrus.FieldLogger
}

// NewLogrusLogger adapts a logrus logger to commontypes.Logger. Critical messages are logged at error level.
func NewLogrusLogger(logger logrus.FieldLogger) commontypes.Logger {
	return &logrusLogger{logger}
}

func (l *logrusLogger) Trace(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l *logrusLogger) Debug(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

func (l *logrusLogger) Critical(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error("CRITICAL: " + msg)
}

type nopLogger struct{}

func (nopLogger) Trace(string, commontypes.LogFields)    {}
func (nopLogger) Debug(string, commontypes.LogFields)    {}
func (nopLogger) Info(string, commontypes.LogFields)     {}
func (nopLogger) Warn(string, commontypes.LogFields)     {}
func (nopLogger) Error(string, commontypes.LogFields)    {}
func (nopLogger) Critical(string, commontypes.LogFields) {}

// merge returns a new LogFields containing the entries of all given maps, later maps take precedence.
func merge(fields ...commontypes.LogFields) commontypes.LogFields {
	result := make(commontypes.LogFields)
	for _, f := range fields {
		for k, v := range f {
			result[k] = v
		}
	}
	return result
}
