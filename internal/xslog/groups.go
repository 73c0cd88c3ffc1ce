package xslog

import (
	"fmt"
	"log/slog"
)

const (
	groupError = "error"
	groupStore = "store"
)

const (
	keyMessage = "message"
	keyType    = "type"
	keyName    = "name"
)

func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}

func StoreGroup(backend, key string) slog.Attr {
	return slog.Group(groupStore,
		slog.String(keyName, backend),
		Key(key),
	)
}
