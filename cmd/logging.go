package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

var verbosityLevels = []string{"none", "low", "high"}

// verbosity is the --verbosity flag value. Unknown levels fail flag parsing.
type verbosity string

func (v *verbosity) String() string {
	return string(*v)
}

func (v *verbosity) Set(s string) error {
	for _, level := range verbosityLevels {
		if s == level {
			*v = verbosity(s)
			return nil
		}
	}
	return fmt.Errorf("must be one of none, low, high")
}

func (v *verbosity) Type() string {
	return "verbosity"
}

func levelFor(verbosity string) log.Level {
	switch verbosity {
	case "low":
		return log.InfoLevel
	case "high":
		return log.TraceLevel
	default:
		return log.ErrorLevel
	}
}

func configureLogging(w io.Writer, verbosity string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(levelFor(verbosity))
}
