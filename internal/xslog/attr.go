package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/constellation/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Total(total int) slog.Attr {
	const totalKey = "total"
	return slog.Int(totalKey, total)
}

func Key(key string) slog.Attr {
	const keyKey = "key"
	return slog.String(keyKey, key)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Completion(completion bool) slog.Attr {
	const completionKey = "completion"
	return slog.Bool(completionKey, completion)
}

func ShowConnections(show bool) slog.Attr {
	const showConnectionsKey = "show_connections"
	return slog.Bool(showConnectionsKey, show)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Deadline(t time.Time) slog.Attr {
	const deadlineKey = "deadline"
	return slog.Time(deadlineKey, t)
}
