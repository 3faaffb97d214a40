package progress

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/fluxo/internal/domain"
)

// encode renders the mapping as the persisted JSON object. Keys come out
// sorted, so equal stores produce equal blobs.
func encode(statuses map[string]domain.ProgressStatus) (string, error) {
	raw := make(map[string]string, len(statuses))
	for code, st := range statuses {
		if st == domain.StatusPending {
			continue
		}
		raw[code] = st.String()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encoding progress: %w", err)
	}
	return string(data), nil
}

// decode parses a persisted blob. Entries whose value is not a known status
// string are returned in rejected and left out of the mapping; only a blob
// that is not a JSON object fails as a whole.
func decode(blob string) (statuses map[string]domain.ProgressStatus, rejected []string, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, nil, fmt.Errorf("decoding progress: %w", err)
	}
	statuses = make(map[string]domain.ProgressStatus, len(raw))
	for code, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			rejected = append(rejected, code)
			continue
		}
		st, err := domain.ParseProgressStatus(s)
		if err != nil {
			rejected = append(rejected, code)
			continue
		}
		if st != domain.StatusPending {
			statuses[code] = st
		}
	}
	return statuses, rejected, nil
}
