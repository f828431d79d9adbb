// Package logging configures the logrus logger shared by the CLI and the
// notification dispatcher, and masks credentials before they are logged.
package logging

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// sensitivePatterns match credentials embedded in free text
var sensitivePatterns = []*regexp.Regexp{
	// Authorization headers and token=... pairs
	regexp.MustCompile(`(?i)(bearer|token)(["\s:=]+)([a-zA-Z0-9_\-\.]{8,})`),
	// Slack incoming webhook secrets
	regexp.MustCompile(`(hooks\.slack\.com/services/)([A-Za-z0-9/_\-]+)`),
	// Discord webhook id/token pairs
	regexp.MustCompile(`(discord(?:app)?\.com/api/webhooks/)([A-Za-z0-9/_\-]+)`),
}

// Setup builds a logger writing to w at the given level. format is "text" or "json".
func Setup(level, format string, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(logLevel)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	logger.SetOutput(w)
	logger.AddHook(&SensitiveHook{})
	return logger, nil
}

// RedactSensitiveData masks tokens and webhook secrets found in s
func RedactSensitiveData(s string) string {
	result := s
	for i, pattern := range sensitivePatterns {
		if i == 0 {
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				parts := pattern.FindStringSubmatch(match)
				return parts[1] + parts[2] + RedactToken(parts[3])
			})
			continue
		}
		result = pattern.ReplaceAllString(result, "${1}****")
	}
	return result
}

// RedactToken keeps the first and last four characters of long tokens
func RedactToken(token string) string {
	if len(token) > 12 {
		return token[:4] + "****" + token[len(token)-4:]
	}
	return "****"
}

// RedactURL keeps scheme and host and masks the path, which is where webhook
// services put their secret.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return RedactSensitiveData(raw)
	}
	if u.Path == "" || u.Path == "/" {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/****"
}

// SensitiveHook redacts messages and string fields of every entry
type SensitiveHook struct{}

// Levels returns all levels
func (hook *SensitiveHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire redacts the entry in place before it is formatted
func (hook *SensitiveHook) Fire(entry *logrus.Entry) error {
	entry.Message = RedactSensitiveData(entry.Message)

	for key, value := range entry.Data {
		switch v := value.(type) {
		case string:
			if isSensitiveField(key) {
				entry.Data[key] = RedactToken(v)
			} else {
				entry.Data[key] = RedactSensitiveData(v)
			}
		case error:
			entry.Data[key] = RedactSensitiveData(v.Error())
		}
	}
	return nil
}

// isSensitiveField reports whether a field name suggests a credential
func isSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sf := range []string{"token", "secret", "password", "authorization", "bearer"} {
		if strings.Contains(lower, sf) {
			return true
		}
	}
	return false
}
