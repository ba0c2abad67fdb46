package logging

import (
	"fmt"
	"strings"
)

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerText: zap console encoder with the development encoder config.
//   - LoggerJSON: zap JSON encoder with the production encoder config.
type LoggerType int

const (
	LoggerText LoggerType = iota
	LoggerJSON
)

var loggerTypeNames = []string{"text", "json"}

func (t LoggerType) String() string {
	if t < 0 || int(t) >= len(loggerTypeNames) {
		return fmt.Sprintf("LoggerType(%d)", int(t))
	}
	return loggerTypeNames[t]
}

func (t LoggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	for i, n := range loggerTypeNames {
		if strings.EqualFold(n, string(text)) {
			*t = LoggerType(i)
			return nil
		}
	}
	return fmt.Errorf("%q does not belong to LoggerType values", string(text))
}
