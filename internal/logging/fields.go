package logging

import "log/slog"

// Field keys shared by every command so log lines can be grepped by player or provider.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldCommand    = "command"
	FieldProvider   = "provider"
	FieldSchema     = "schema"
	FieldPlayerID   = "player_id"
	FieldCount      = "count"
	FieldURL        = "url"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

// PlayerID is the player_id attribute for an MLB person id.
func PlayerID(id uint32) slog.Attr {
	return slog.Uint64(FieldPlayerID, uint64(id))
}

// Schema is the schema attribute for a decoding schema name.
func Schema(name string) slog.Attr {
	return slog.String(FieldSchema, name)
}
