package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tinytelemetry/pulse/internal/logparse"
	"github.com/tinytelemetry/pulse/internal/model"
	"github.com/tinytelemetry/pulse/internal/timestamp"
)

// Field names tried, in priority order, for each attribute the engine
// reads. Mixed-source collections spell the same field several ways.
var (
	kindKeys      = []string{"kind", "type", "event"}
	statusKeys    = []string{"status", "statusCode", "status_code", "code"}
	timestampKeys = []string{"time", "ts", "timestamp"}
	idKeys        = []string{"id", "_id", "requestId", "request_id"}
	payloadKeys   = []string{"payload", "data", "http", "request"}
)

// Extractor turns raw log lines into LogRecords. A single instance is
// safe for reuse across lines; it holds only the timestamp parser.
type Extractor struct {
	parser *timestamp.Parser
}

// NewExtractor creates an Extractor with the default timestamp parser.
func NewExtractor() *Extractor {
	return &Extractor{parser: timestamp.NewParser()}
}

// ParseLine extracts a LogRecord from one raw line. Lines that are not
// JSON objects, or that carry no usable fields at all, yield nil rather
// than an error, since unrelated entries are expected in mixed collections.
func (e *Extractor) ParseLine(line string) *model.LogRecord {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	record := &model.LogRecord{
		ID:      ExtractStringField(raw, idKeys...),
		RawLine: line,
		Fields:  flattenFields(raw),
	}

	// The discriminator and status code may sit at the top level or inside
	// a nested payload object; try the record itself first.
	record.Kind = logparse.NormalizeKind(ExtractStringField(raw, kindKeys...))
	if code, ok := extractStatusCode(raw); ok {
		record.StatusCode = code
	}

	for _, key := range payloadKeys {
		nested, ok := raw[key].(map[string]interface{})
		if !ok {
			continue
		}
		if record.Kind == "" {
			record.Kind = logparse.NormalizeKind(ExtractStringField(nested, kindKeys...))
		}
		if record.StatusCode == 0 {
			if code, ok := extractStatusCode(nested); ok {
				record.StatusCode = code
			}
		}
		if record.ID == "" {
			record.ID = ExtractStringField(nested, idKeys...)
		}
	}

	record.Timestamp = e.resolveTimestamp(raw, line)
	return record
}

// ParseEnvelope extracts a record from a source-tagged line.
func (e *Extractor) ParseEnvelope(env model.IngestEnvelope) *model.LogRecord {
	if env.Line == "" {
		return nil
	}
	record := e.ParseLine(env.Line)
	if record != nil && env.Source != "" {
		record.Fields["source"] = env.Source
	}
	return record
}

// resolveTimestamp tries the prioritized timestamp fields and finally a
// leading timestamp in the raw line. A zero return means unresolvable;
// the aggregator skips such records.
func (e *Extractor) resolveTimestamp(raw map[string]interface{}, line string) time.Time {
	for _, key := range timestampKeys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if ts, parsed := e.parser.ParseTimestamp(value); parsed {
			return ts
		}
	}

	if result := e.parser.ParseFromText(line); result.Found {
		return result.Timestamp
	}
	return time.Time{}
}

func extractStatusCode(raw map[string]interface{}) (int, bool) {
	for _, key := range statusKeys {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if code, parsed := logparse.ParseStatusCode(value); parsed {
			return code, true
		}
	}
	return 0, false
}

// flattenFields keeps the scalar top-level fields of the payload as
// strings for tooltip display. Nested objects are skipped.
func flattenFields(raw map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		str := stringifyJSONValue(value)
		if str == "" {
			continue
		}
		fields[key] = str
	}
	return fields
}

// ExtractStringField returns the first non-empty string value found among
// the given keys.
func ExtractStringField(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if str := stringifyJSONValue(v); str != "" {
				return str
			}
		}
	}
	return ""
}

func stringifyJSONValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	case bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
