package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single marker",
			input: "const rows = getAll(`SELECT * FROM t WHERE id = ?`);",
			want:  "const rows = getAll(`SELECT * FROM t WHERE id = $1`);",
		},
		{
			name:  "markers numbered left to right",
			input: "runQuery(`UPDATE users SET name = ?, email = ? WHERE id = ?`, [a, b, c]);",
			want:  "runQuery(`UPDATE users SET name = $1, email = $2 WHERE id = $3`, [a, b, c]);",
		},
		{
			name:  "counter spans literals on the same line",
			input: "runQuery(`UPDATE a SET b = ?`, [x]); runQuery(`DELETE FROM c WHERE d = ?`, [y]);",
			want:  "runQuery(`UPDATE a SET b = $1`, [x]); runQuery(`DELETE FROM c WHERE d = $2`, [y]);",
		},
		{
			name:  "lowercase keywords still gate the line",
			input: "db.prepare(`select * from t where id = ?`)",
			want:  "db.prepare(`select * from t where id = $1`)",
		},
		{
			name:  "ternary inside template literal is kept",
			input: "const sql = `SELECT * FROM t WHERE ${active ? 'a = 1' : 'b = 2'}`;",
			want:  "const sql = `SELECT * FROM t WHERE ${active ? 'a = 1' : 'b = 2'}`;",
		},
		{
			name:  "keyword before the colon means a real parameter",
			input: "runQuery(`UPDATE t SET a = ? WHERE b::text = c`, [a]);",
			want:  "runQuery(`UPDATE t SET a = $1 WHERE b::text = c`, [a]);",
		},
		{
			name:  "marker outside the literal is left alone",
			input: "if (x?.y) runQuery(`DELETE FROM t WHERE id = ?`, [id]);",
			want:  "if (x?.y) runQuery(`DELETE FROM t WHERE id = $1`, [id]);",
		},
		{
			name:  "non-ascii text after the marker",
			input: "getAll(`SELECT * FROM t WHERE name = ? -- ünïcödé`)",
			want:  "getAll(`SELECT * FROM t WHERE name = $1 -- ünïcödé`)",
		},
		{
			name:  "keyword glued to japanese text is not a keyword",
			input: "const msg = `申請OR承認ですか?`;",
			want:  "const msg = `申請OR承認ですか?`;",
		},
		{
			name:  "japanese identifiers inside a query",
			input: "getAll(`SELECT * FROM 申請 WHERE 状態 = ? AND 部署 = ?`, [s, d]);",
			want:  "getAll(`SELECT * FROM 申請 WHERE 状態 = $1 AND 部署 = $2`, [s, d]);",
		},
		{
			name:  "clause keyword glued to japanese text does not block a ternary",
			input: "const q = `SELECT * FROM t WHERE ${ok ? '有効FROM' : '無効'}`;",
			want:  "const q = `SELECT * FROM t WHERE ${ok ? '有効FROM' : '無効'}`;",
		},
		{
			name:  "no sql keyword",
			input: "const label = `is it ready?`;",
			want:  "const label = `is it ready?`;",
		},
		{
			name:  "no backtick",
			input: `db.prepare("SELECT * FROM t WHERE id = ?")`,
			want:  `db.prepare("SELECT * FROM t WHERE id = ?")`,
		},
		{
			name:  "no marker",
			input: "getAll(`SELECT * FROM t`)",
			want:  "getAll(`SELECT * FROM t`)",
		},
		{
			name:  "already numbered placeholders are not counted",
			input: "getAll(`SELECT * FROM t WHERE a = $1 AND b = ?`)",
			want:  "getAll(`SELECT * FROM t WHERE a = $1 AND b = $1`)",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertPlaceholders(tt.input))
		})
	}
}

func TestConvertPlaceholdersRestartsPerLine(t *testing.T) {
	input := "const a = getOne(`SELECT * FROM a WHERE id = ?`);\n" +
		"const b = getAll(`SELECT * FROM b WHERE x = ? AND y = ?`);\n" +
		"const c = getOne(`SELECT * FROM c WHERE id = ?`);"
	want := "const a = getOne(`SELECT * FROM a WHERE id = $1`);\n" +
		"const b = getAll(`SELECT * FROM b WHERE x = $1 AND y = $2`);\n" +
		"const c = getOne(`SELECT * FROM c WHERE id = $1`);"

	assert.Equal(t, want, ConvertPlaceholders(input))
}

func TestConvertPlaceholdersKeepsLinesWithoutKeywords(t *testing.T) {
	lines := []string{
		"const x = a ? b : c;",
		"  // TODO: `?`",
		"\t`${foo}?`",
		"export const handler = (req: Request): void => {",
	}
	for _, line := range lines {
		assert.Equal(t, line, ConvertPlaceholders(line))
	}
}

func TestConvertPlaceholdersIsStableOnOutput(t *testing.T) {
	input := "runQuery(`INSERT INTO t (a, b) VALUES (?, ?)`, [a, b]);\n" +
		"const sql = `SELECT * FROM t WHERE ${on ? 'x' : 'y'}`;"

	once := ConvertPlaceholders(input)
	assert.Equal(t, "runQuery(`INSERT INTO t (a, b) VALUES ($1, $2)`, [a, b]);\n"+
		"const sql = `SELECT * FROM t WHERE ${on ? 'x' : 'y'}`;", once)
	assert.Equal(t, once, ConvertPlaceholders(once))
}

func TestIsTernaryMarker(t *testing.T) {
	tests := []struct {
		rest string
		want bool
	}{
		{" 'a' : 'b'}`", true},
		{"   x : y", true},
		{" WHERE a:b", false},
		{"`);", false},
		{", this text is long enough that the colon is far : away", false},
		{"", false},
		{" " + strings.Repeat("x", 19) + ":y", true},
		{" " + strings.Repeat("x", 20) + ":y", false},
		{strings.Repeat("ü", 19) + ":y", true},
		{strings.Repeat("ü", 20) + ":y", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isTernaryMarker(tt.rest), "rest=%q", tt.rest)
	}
}

func TestHeadRunes(t *testing.T) {
	assert.Equal(t, "abc", headRunes("abc", 5))
	assert.Equal(t, "ab", headRunes("abc", 2))
	assert.Equal(t, "ün", headRunes("ünï", 2))
	assert.Equal(t, "", headRunes("abc", 0))
}
