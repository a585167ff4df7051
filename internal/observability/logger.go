// Package observability sets up logging and Prometheus metrics.
package observability

import (
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// SetupLogger configures the standard logrus logger.
func SetupLogger(level, format string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to parse log level")
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(w)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return nil
	}

	logrus.SetFormatter(&logrus.TextFormatter{})
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}
