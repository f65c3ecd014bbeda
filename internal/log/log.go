// Package log is the structured logging surface: JSON lines with request
// context attached when a fiber.Ctx is at hand.
package log

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	return l
}

// SetOutput redirects all log lines, e.g. to a stdout+file multi-writer.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func fields(c *fiber.Ctx, action string, extra map[string]any) logrus.Fields {
	f := logrus.Fields{"action": action}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		if status := c.Response().StatusCode(); status != 0 {
			f["status"] = status
		}
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

func Info(c *fiber.Ctx, action string, extra map[string]any) {
	std.WithFields(fields(c, action, extra)).Info()
}

// Audit marks state-changing operations an operator may want to trace.
func Audit(c *fiber.Ctx, action string, extra map[string]any) {
	std.WithFields(fields(c, action, extra)).WithField("kind", "audit").Info()
}

// Security flags rejected or suspicious input.
func Security(c *fiber.Ctx, action string, extra map[string]any) {
	std.WithFields(fields(c, action, extra)).Warn()
}

func Error(c *fiber.Ctx, action string, err error, extra map[string]any) {
	entry := std.WithFields(fields(c, action, extra))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error()
}
