package naming

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	typePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
		slug      string
		typeName  string
	}{
		{name: "spaced words", input: "My Widget", canonical: "My Widget", slug: "my-widget", typeName: "MyWidget"},
		{name: "already a slug", input: "ng-service", canonical: "ng-service", slug: "ng-service", typeName: "NgService"},
		{name: "camel case with acronym", input: "myHTTPService", canonical: "myHTTPService", slug: "my-http-service", typeName: "MyHttpService"},
		{name: "pascal case", input: "UserProfile", canonical: "UserProfile", slug: "user-profile", typeName: "UserProfile"},
		{name: "snake case", input: "user_profile", canonical: "user_profile", slug: "user-profile", typeName: "UserProfile"},
		{name: "accents stripped", input: "Café au lait", canonical: "Café au lait", slug: "cafe-au-lait", typeName: "CafeAuLait"},
		{name: "digits split words", input: "v2Api", canonical: "v2Api", slug: "v-2-api", typeName: "V2Api"},
		{name: "leading digit", input: "2fa helper", canonical: "2fa helper", slug: "2-fa-helper", typeName: "X2FaHelper"},
		{name: "non latin runes separate", input: "order漢history", canonical: "order漢history", slug: "order-history", typeName: "OrderHistory"},
		{name: "surrounding whitespace", input: "  Foo  ", canonical: "Foo", slug: "foo", typeName: "Foo"},
		{name: "repeated separators", input: "foo -- bar..baz", canonical: "foo -- bar..baz", slug: "foo-bar-baz", typeName: "FooBarBaz"},
		{name: "empty", input: "", canonical: DefaultName, slug: "ng-service", typeName: "NgService"},
		{name: "blank", input: "   ", canonical: DefaultName, slug: "ng-service", typeName: "NgService"},
		{name: "punctuation only", input: "!!!", canonical: DefaultName, slug: "ng-service", typeName: "NgService"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms := Derive(tt.input)
			require.Equal(t, tt.canonical, forms.Canonical)
			require.Equal(t, tt.slug, forms.Slug)
			require.Equal(t, tt.typeName, forms.Type)
		})
	}
}

func TestDeriveOr(t *testing.T) {
	t.Run("custom fallback", func(t *testing.T) {
		forms := DeriveOr(" ", "data store")
		require.Equal(t, Forms{Canonical: "data store", Slug: "data-store", Type: "DataStore"}, forms)
	})

	t.Run("unusable fallback", func(t *testing.T) {
		forms := DeriveOr("", "---")
		require.Equal(t, Derive(""), forms)
	})

	t.Run("input wins over fallback", func(t *testing.T) {
		require.Equal(t, "foo", DeriveOr("Foo", "bar").Slug)
	})
}

func TestDerive_Properties(t *testing.T) {
	alphabet := []rune("aBcDxyZ0189 -_.!/éÄßø漢\t")
	rng := rand.New(rand.NewSource(42))

	inputs := []string{"a", "A", "AB", "aB", "Ab", "0", "a0", "0a", "HTTPServer", "x-Y_z"}
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(16)
		buf := make([]rune, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		inputs = append(inputs, string(buf))
	}

	for _, input := range inputs {
		forms := Derive(input)

		require.Regexp(t, slugPattern, forms.Slug, "input %q", input)
		require.Regexp(t, typePattern, forms.Type, "input %q", input)
		require.Equal(t, forms.Slug, Derive(forms.Slug).Slug, "slug not idempotent for %q", input)
		require.Equal(t, forms, Derive(input), "not deterministic for %q", input)
	}
}

func TestWords(t *testing.T) {
	require.Equal(t, []string{"parse", "xml", "document"}, Words("parseXMLDocument"))
	require.Equal(t, []string{"a", "b"}, Words("a/b"))
	require.Empty(t, Words("漢字"))
	require.Equal(t, []string{"http", "server", "2"}, Words("  HTTPServer_2 "))
}
