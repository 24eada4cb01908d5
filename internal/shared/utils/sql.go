package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// WhereBuilder collects WHERE clauses with numbered pgx placeholders
type WhereBuilder struct {
	clauses []string
	args    []any
}

// Add appends a clause; every "?" in clause is replaced by the next $n placeholder
func (b *WhereBuilder) Add(clause string, args ...any) {
	for _, arg := range args {
		b.args = append(b.args, arg)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.clauses = append(b.clauses, clause)
}

// SQL trả về "WHERE ..." hoặc chuỗi rỗng khi không có điều kiện
func (b *WhereBuilder) SQL() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + JoinWithAnd(b.clauses)
}

func (b *WhereBuilder) Args() []any {
	return b.args
}

// NextArg appends arg and returns its placeholder, for LIMIT/OFFSET after the WHERE
func (b *WhereBuilder) NextArg(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
