package extract

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// ScanMax locates the values array with a gjson path query and folds its raw
// number literals without building a tree.
//
// The rest of the document is not validated.
func ScanMax(doc string) (uint64, error) {
	res := gjson.Get(doc, ValuesField)
	if !res.Exists() {
		return 0, malformed("missing field %q", ValuesField)
	}
	if !res.IsArray() {
		return 0, malformed("field %q: expected array", ValuesField)
	}

	var (
		best    uint64
		seen    bool
		idx     int
		scanErr error
	)
	res.ForEach(func(_, el gjson.Result) bool {
		if el.Type != gjson.Number {
			scanErr = malformed("%s[%d]: expected number, got %s", ValuesField, idx, el.Type)
			return false
		}

		n, err := strconv.ParseUint(el.Raw, 10, 64)
		if err != nil {
			scanErr = malformed("%s[%d]: %v", ValuesField, idx, err)
			return false
		}

		if !seen || n > best {
			best = n
			seen = true
		}
		idx++

		return true
	})

	if scanErr != nil {
		return 0, scanErr
	}
	if !seen {
		return 0, ErrNoValues
	}

	return best, nil
}
