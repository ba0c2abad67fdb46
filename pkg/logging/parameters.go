package logging

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type Parameters struct {
	Level zapcore.Level
	Type  LoggerType
	// Filter drops entries not matched by the rules, nil keeps everything.
	Filter zapfilter.FilterFunc

	flagLogLevel   string
	flagLoggerType string
	flagLogFilter  string
}

// Initialize adds logging command line parameters to the flag set.
func (p *Parameters) Initialize(fs *pflag.FlagSet) {
	fs.StringVar(&p.flagLogLevel, "log-level", "INFO",
		"Logging level. Supported levels: DEBUG, INFO, WARN, ERROR, FATAL.")
	fs.StringVar(&p.flagLoggerType, "log-type", "text",
		"Logger output format. Supported types: text, json.")
	fs.StringVar(&p.flagLogFilter, "log-filter", "",
		"Space separated rules LEVELS:LOGGERS to select entries, for example \"*:corpus error,warn:*\".")
}

// Parse converts the values of the command line parameters.
func (p *Parameters) Parse() error {
	var err error
	p.Level, err = ParseLevel(p.flagLogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	if err := p.Type.UnmarshalText([]byte(p.flagLoggerType)); err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	if p.flagLogFilter != "" {
		p.Filter, err = zapfilter.ParseRules(p.flagLogFilter)
		if err != nil {
			return errors.Wrap(err, "failed to parse logger parameters")
		}
	}
	return nil
}

func (p *Parameters) String() string {
	return fmt.Sprintf("{Level: %s, Type: %s}", p.Level.CapitalString(), p.Type)
}

// ParseLevel accepts level names in any case. An empty string is INFO.
func ParseLevel(l string) (zapcore.Level, error) {
	switch strings.ToUpper(l) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "", "INFO":
		return zapcore.InfoLevel, nil
	case "WARN":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "FATAL":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, errors.Errorf("invalid log level %q", l)
	}
}
