package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the service logger. Format "text" selects the human
// readable formatter, anything else logs JSON.
func NewLogger(service, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.AddHook(serviceHook(service))
	return log
}

type serviceHook string

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = string(h)
	}
	return nil
}
