package testutil

import "fmt"

// MinimalPersonJSON returns a record carrying only the identity fields.
func MinimalPersonJSON(id uint32, fullName string) string {
	return fmt.Sprintf(`{"id":%d,"fullName":%q}`, id, fullName)
}

// SidedPersonJSON returns a record with identity and both sides, enough for the loose schema.
func SidedPersonJSON(id uint32, fullName, batCode, batDesc, pitchCode, pitchDesc string) string {
	return fmt.Sprintf(`{"id":%d,"fullName":%q,"batSide":{"code":%q,"description":%q},"pitchHand":{"code":%q,"description":%q}}`,
		id, fullName, batCode, batDesc, pitchCode, pitchDesc)
}

// FullPersonJSON returns a complete record that satisfies the strict schema.
func FullPersonJSON(id uint32, fullName, birthCountry string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"fullName": %q,
		"height": "6' 1\"",
		"weight": 200,
		"birthDate": "1990-04-01",
		"mlbDebutDate": "2012-05-01",
		"birthCity": "Somewhere",
		"birthCountry": %q,
		"active": true,
		"batSide": {"code": "R", "description": "Right"},
		"pitchHand": {"code": "R", "description": "Right"}
	}`, id, fullName, birthCountry)
}
