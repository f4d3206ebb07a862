package leaderboard

import (
	"errors"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformed is returned by Decode when the stored value is not a JSON array.
var ErrMalformed = errors.New("leaderboard: malformed data")

// Decode parses a persisted leaderboard.
// Elements without a numeric score are skipped; an unparseable date becomes
// the zero time.
func Decode(data string) ([]Entry, error) {
	if !gjson.Valid(data) {
		return nil, ErrMalformed
	}
	root := gjson.Parse(data)
	if !root.IsArray() {
		return nil, ErrMalformed
	}

	entries := make([]Entry, 0, 5)
	root.ForEach(func(_, value gjson.Result) bool {
		score := value.Get("score")
		if score.Type != gjson.Number {
			return true
		}
		e := Entry{Score: int(score.Int())}
		if d := value.Get("date"); d.Exists() {
			if t, err := time.Parse(time.RFC3339Nano, d.String()); err == nil {
				e.Date = t
			}
		}
		entries = append(entries, e)
		return true
	})
	return entries, nil
}

// Encode serializes entries as a JSON array of {"score", "date"} objects.
func Encode(entries []Entry) (string, error) {
	out := []byte("[]")
	for _, e := range entries {
		obj, err := sjson.SetBytes([]byte("{}"), "score", e.Score)
		if err != nil {
			return "", err
		}
		obj, err = sjson.SetBytes(obj, "date", e.Date.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRawBytes(out, "-1", obj)
		if err != nil {
			return "", err
		}
	}
	return string(out), nil
}
