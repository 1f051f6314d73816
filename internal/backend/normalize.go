package backend

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// unwrapList accepts a bare array, {<key>:[...]} or {Items:[...]} and
// returns the array elements. Anything else is an empty list.
func unwrapList(body []byte, key string) []json.RawMessage {
	doc := gjson.ParseBytes(body)
	var list gjson.Result
	switch {
	case doc.IsArray():
		list = doc
	case doc.Get(key).IsArray():
		list = doc.Get(key)
	case doc.Get("Items").IsArray():
		list = doc.Get("Items")
	default:
		return []json.RawMessage{}
	}
	out := make([]json.RawMessage, 0, len(list.Array()))
	list.ForEach(func(_, item gjson.Result) bool {
		out = append(out, json.RawMessage(item.Raw))
		return true
	})
	return out
}

// decodeList decodes each list element on its own. An element that does not
// fit T is logged and skipped; the rest of the list is kept.
func decodeList[T any](log *zap.Logger, in call, body []byte, key string) []T {
	raw := unwrapList(body, key)
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			log.Warn("backend list element skipped",
				zap.String("method", in.method),
				zap.String("path", in.path),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		out = append(out, v)
	}
	return out
}
