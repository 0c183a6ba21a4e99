// Package log writes structured JSON log lines through logrus. The helpers take
// the current request (or nil outside a request) and attach its id, client ip,
// method, path and status.
package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var std = newLogger(os.Stdout)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		FieldMap:        logrus.FieldMap{logrus.FieldKeyTime: "ts", logrus.FieldKeyMsg: "action"},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup sets the minimum level and, when file is non-empty, copies every line
// to that file as well as stdout.
func Setup(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	std.SetLevel(lvl)
	if file == "" {
		std.SetOutput(os.Stdout)
		return nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", file)
	}
	std.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// SetOutput redirects log lines; tests use it to capture output.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Logger exposes the underlying logger for packages that log outside a request.
func Logger() *logrus.Logger { return std }

func entry(c *fiber.Ctx, kind string, fields map[string]any) *logrus.Entry {
	f := logrus.Fields{"kind": kind}
	for k, v := range fields {
		f[k] = v
	}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	return std.WithFields(f)
}

// Access writes the per-request line once the response status is known.
func Access(c *fiber.Ctx, latency string) {
	entry(c, "access", map[string]any{"latency": latency}).Info("http.request")
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "app", fields).Info(action)
}

// Audit records a state change made on behalf of a client.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "audit", fields).Info(action)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	entry(c, "security", fields).Warn(action)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry(c, "app", fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(action)
}
