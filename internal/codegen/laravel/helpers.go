package laravel

import (
	"path"
	"strings"
	"time"

	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/descriptor"
	"github.com/okra-platform/crudkit/internal/naming"
)

// migrationTimeFormat mirrors Laravel's Y_m_d_His migration prefix
const migrationTimeFormat = "2006_01_02_150405"

// Rule is one entry of a validation rule mapping
type Rule struct {
	Key  string
	Rule string
}

// DefaultRule applies to columns without a declared validation rule
const DefaultRule = "nullable"

// LocaleKey wraps a localized column name in the placeholder the
// translatable rule factory expands once per locale.
func LocaleKey(column string) string {
	return "%" + column + "%"
}

// ValidationRules builds the rule mapping for every column in declaration
// order. Localized columns are keyed by LocaleKey.
func ValidationRules(columns []descriptor.Column) []Rule {
	rules := make([]Rule, 0, len(columns))
	for _, c := range columns {
		rule := c.Validation
		if rule == "" {
			rule = DefaultRule
		}
		key := c.Name
		if c.Localized {
			key = LocaleKey(c.Name)
		}
		rules = append(rules, Rule{Key: key, Rule: rule})
	}
	return rules
}

// label returns the declared label or the one derived from the column name
func label(c descriptor.Column) string {
	if c.Label != "" {
		return c.Label
	}
	return naming.Label(c.Name)
}

// phpLiteral renders a column default as a PHP literal
func phpLiteral(l *descriptor.Literal) string {
	switch l.Kind {
	case descriptor.LiteralNull:
		return "null"
	case descriptor.LiteralBool, descriptor.LiteralInt, descriptor.LiteralFloat:
		return l.Value
	default:
		return templates.PHPString(l.Value)
	}
}

// className returns the last segment of a fully qualified PHP class name
func className(fqn string) string {
	if i := strings.LastIndex(fqn, `\`); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// qualify joins a PHP namespace and a class name
func qualify(namespace, class string) string {
	namespace = strings.Trim(namespace, `\`)
	if namespace == "" {
		return class
	}
	return namespace + `\` + class
}

// migrationPath builds a timestamp-prefixed migration file path
func migrationPath(dir string, ts time.Time, name string) string {
	return path.Join(dir, ts.Format(migrationTimeFormat)+"_"+name+".php")
}

// MigrationPattern matches the file name of a migration called name under
// any timestamp.
func MigrationPattern(name string) string {
	return "????_??_??_??????_" + name + ".php"
}
