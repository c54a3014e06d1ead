package flinksql

import "regexp"

// fullQualification matches a backtick-quoted three-part dotted identifier,
// e.g. `env`.`cluster`.`table`.
var fullQualification = regexp.MustCompile("`[^`]+`\\.`[^`]+`\\.`([^`]+)`")

// SanitizeSQL shortens every fully-qualified three-part identifier in sql to
// its last part: `env`.`cluster`.`table` becomes `table`. Credential values
// are left untouched. The rewrite is applied globally and is idempotent.
func SanitizeSQL(sql string) string {
	return fullQualification.ReplaceAllString(sql, "`$1`")
}
