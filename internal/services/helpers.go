package services

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func utcNow() time.Time {
	return time.Now().UTC()
}

// normalizeMapData maps an absent payload and the falsy JSON scalars
// (null, false, 0, "") to nil so the stored level reports mapData: null.
func normalizeMapData(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch string(trimmed) {
	case "null", "false", `""`:
		return nil
	}
	if c := trimmed[0]; c == '-' || (c >= '0' && c <= '9') {
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil && f == 0 {
			return nil
		}
	}
	return append(json.RawMessage(nil), trimmed...)
}
