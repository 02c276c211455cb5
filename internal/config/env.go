package config

import (
	"os"
	"regexp"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([^@}]*)@?([^}]*)\}`)

// ExpandVars expands shell variables of the form ${VAR} in value. A variable
// that is unset or empty in the environment is replaced by its inline default
// when written as ${VAR@default}, otherwise by the empty string. Substituted
// text is not rescanned.
func ExpandVars(value string) string {
	var b strings.Builder
	last := 0
	for _, m := range envVarPattern.FindAllStringSubmatchIndex(value, -1) {
		b.WriteString(value[last:m[0]])
		name := value[m[2]:m[3]]
		def := value[m[4]:m[5]]
		env := os.Getenv(name)
		if env == "" {
			env = def
		}
		b.WriteString(env)
		last = m[1]
	}
	b.WriteString(value[last:])
	return b.String()
}
