package sl

import "log/slog"

// Err lets an error be attached to slog attributes as-is.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
