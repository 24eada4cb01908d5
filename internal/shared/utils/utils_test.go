package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	items := []struct {
		title string
		slug  string
	}{
		{"HAllo", "hallo"},
		{"Hello World", "hello-world"},
		{"  padded title  ", "padded-title"},
		{"Hello, World -- again!", "hello-world-again"},
		{"-leading and trailing-", "leading-and-trailing"},
		{"Ünïcödé stays out", "ncd-stays-out"},
		{"tabs\tand\nnewlines", "tabsandnewlines"},
		{"", ""},
		{"!!!", ""},
		{"2024 roadmap", "2024-roadmap"},
	}

	for _, item := range items {
		t.Run(item.title, func(t *testing.T) {
			assert.Equal(t, item.slug, GenerateSlug(item.title))
		})
	}
}

func TestGenerateSlugShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	titles := []string{
		"A -- B", "---", " - - ", "Über cool 100% (really)", "x", "a  b", "foo_bar-baz",
	}

	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.Regexp(t, valid, slug, title)
		assert.False(t, strings.HasPrefix(slug, "-"), title)
		assert.False(t, strings.HasSuffix(slug, "-"), title)
		assert.NotContains(t, slug, "--", title)
		assert.Equal(t, slug, GenerateSlug(title), "deterministic")
	}
}

func TestNormalizeContent(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, NormalizeContent(nil))
	})

	items := []struct {
		name string
		raw  string
		want string
	}{
		{"no breaks", "plain text", "plain text"},
		{"unix", "one\ntwo", "one<br />\ntwo"},
		{"windows", "one\r\ntwo", "one<br />\ntwo"},
		{"old mac", "one\rtwo", "one<br />\ntwo"},
		{"reversed", "one\n\rtwo", "one<br />\ntwo"},
		{"blank line", "one\n\ntwo", "one<br />\n<br />\ntwo"},
		{"markup kept", "<b>bold</b>\n", "<b>bold</b><br />\n"},
		{"empty", "", ""},
	}

	for _, item := range items {
		t.Run(item.name, func(t *testing.T) {
			raw := item.raw
			got := NormalizeContent(&raw)
			require.NotNil(t, got)
			assert.Equal(t, item.want, *got)
			assert.Equal(t, item.raw, raw, "input untouched")
		})
	}
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "now", TimeAgo(time.Now()))
	assert.Equal(t, "2 hours ago", TimeAgo(time.Now().Add(-2*time.Hour-time.Minute)))
}

func TestWhereBuilder(t *testing.T) {
	var b WhereBuilder
	assert.Equal(t, "", b.SQL())

	b.Add("a.is_published = ?", true)
	b.Add("a.title ILIKE ?", "%go%")
	limit := b.NextArg(10)

	assert.Equal(t, "WHERE a.is_published = $1 AND a.title ILIKE $2", b.SQL())
	assert.Equal(t, "$3", limit)
	assert.Equal(t, []any{true, "%go%", 10}, b.Args())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%go%", ContainsPattern("go"))
	assert.Equal(t, `%100\%\_sure\\%`, ContainsPattern(`100%_sure\`))
}
